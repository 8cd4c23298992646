// Package Config loads the settings a genealogy tree is built from: which id
// index backs duplicate checks, how large the arena starts, and how loud the
// tree logs. Values come from defaults, then an optional TOML or YAML file,
// then GENEALOGY_* environment variables.
package Config

import (
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-genealogy/Sets"
	"github.com/g-m-twostay/go-genealogy/Sets/HashSet"
	"github.com/g-m-twostay/go-genealogy/Trees"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/exp/constraints"
)

// Indexes lists the accepted values of Config.Index.
var Indexes = []string{"scan", "hopscotch", "btree", "llrb", "treeset", "haxmap", "hashmap", "xsync"}

// Config of a tree.
type Config struct {
	// Index names the id index backend, one of Indexes. "scan" means none.
	Index string `mapstructure:"index"`
	// Hint is the number of nodes the arena has room for before it grows.
	Hint     uint   `mapstructure:"hint"`
	LogLevel string `mapstructure:"log_level"`
	// BTreeDegree is the degree of the btree index.
	BTreeDegree int `mapstructure:"btree_degree"`
	// HashNeighborhood and HashSeed tune the hopscotch index.
	HashNeighborhood uint8 `mapstructure:"hash_neighborhood"`
	HashSeed         uint  `mapstructure:"hash_seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("index", "hopscotch")
	v.SetDefault("hint", 64)
	v.SetDefault("log_level", "info")
	v.SetDefault("btree_degree", 32)
	v.SetDefault("hash_neighborhood", 16)
	v.SetDefault("hash_seed", 0)
}

// Load reads the configuration. path names a config file; when it's empty,
// GENEALOGY_CONFIG is used instead, and when that's empty too only defaults and
// environment variables apply. The file type follows its extension.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv("GENEALOGY_CONFIG")
	}
	v.SetEnvPrefix("GENEALOGY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first setting that can't be used to build a tree.
func (c Config) Validate() error {
	if !slices.Contains(Indexes, c.Index) {
		return errors.Newf("unknown index %q, want one of %v", c.Index, Indexes)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	if c.HashNeighborhood < 1 || c.HashNeighborhood > 127 {
		return errors.Newf("hash_neighborhood %d outside [1, 127]", c.HashNeighborhood)
	}
	return nil
}

// NewIndex builds an empty index of the configured kind; nil for "scan".
func (c Config) NewIndex() (Sets.Set[int], error) {
	switch c.Index {
	case "scan":
		return nil, nil
	case "hopscotch":
		return HashSet.New[int](c.HashNeighborhood, c.Hint, c.HashSeed), nil
	case "btree":
		return Sets.NewBTreeSet(c.BTreeDegree), nil
	case "llrb":
		return Sets.NewLLRBSet(), nil
	case "treeset":
		return Sets.NewTreeSet(), nil
	case "haxmap":
		return Sets.NewHaxSet(), nil
	case "hashmap":
		return Sets.NewHashMapSet(), nil
	case "xsync":
		return Sets.NewXSyncSet(), nil
	}
	return nil, errors.Newf("unknown index %q", c.Index)
}

// Apply the log level to Trees.Log.
func (c Config) Apply() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log_level")
	}
	Trees.Log.SetLevel(lvl)
	return nil
}

// NewTree applies c and returns an empty tree with the configured index and
// arena hint. Fails if the hint doesn't fit in S.
func NewTree[S constraints.Unsigned](c Config) (*Trees.Tree[S], error) {
	hint := S(c.Hint)
	if uint64(hint) != uint64(c.Hint) {
		return nil, errors.Newf("hint %d overflows the arena index type", c.Hint)
	}
	if err := c.Apply(); err != nil {
		return nil, err
	}
	idx, err := c.NewIndex()
	if err != nil {
		return nil, err
	}
	return Trees.New[S](hint, idx), nil
}
