package Trees

import "github.com/sirupsen/logrus"

// Log receives a Debug entry for every mutation. It stays quiet at logrus' default level.
var Log = logrus.New()
