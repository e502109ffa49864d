package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/nireo/treerb/tree"
	"github.com/nireo/treerb/utils"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

var amount = flag.Int("amount", 100000, "the amount of keys to insert into the trees")
var testRead = flag.Bool("read", false, "if the program should also benchmark lookups")
var testRemove = flag.Bool("remove", false, "if the program should also benchmark removals")
var configPath = flag.String("config", "", "path to a toml file holding the tree configuration")

func init() {
	flag.Parse()
}

func loadConfig(path string) (*tree.Config, error) {
	config := tree.DefaultConfiguration()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

type target struct {
	name   string
	insert func(k int)
	get    func(k int) bool
	remove func(k int)
	size   func() int
}

func targets(config *tree.Config) []target {
	ours := tree.NewWithConfig(tree.Ordered[int], config)
	gods := redblacktree.NewWithIntComparator()

	return []target{
		{
			name:   "treerb",
			insert: func(k int) { ours.Insert(k) },
			get:    ours.Contains,
			remove: func(k int) { ours.Remove(k) },
			size:   ours.Size,
		},
		{
			name:   "gods",
			insert: func(k int) { gods.Put(k, nil) },
			get: func(k int) bool {
				_, ok := gods.Get(k)
				return ok
			},
			remove: func(k int) { gods.Remove(k) },
			size:   gods.Size,
		},
	}
}

func main() {
	log := utils.Logger()
	log.SetLevel(logrus.InfoLevel)

	config, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}
	if config.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	keys := rng.Perm(*amount)

	for _, tg := range targets(config) {
		fields := logrus.Fields{"tree": tg.name, "keys": *amount}

		startTime := time.Now()
		for _, k := range keys {
			tg.insert(k)
		}
		log.WithFields(fields).WithField("took", time.Since(startTime)).Info("inserts done")

		if *testRead {
			readStart := time.Now()
			for _, k := range keys {
				if !tg.get(k) {
					log.WithFields(fields).Errorf("error getting key: %d", k)
				}
			}
			log.WithFields(fields).WithField("took", time.Since(readStart)).Info("reads done")
		}

		if *testRemove {
			removeStart := time.Now()
			for _, k := range keys {
				tg.remove(k)
			}
			log.WithFields(fields).WithField("took", time.Since(removeStart)).Info("removals done")

			if tg.size() != 0 {
				log.WithFields(fields).Errorf("%d keys left after removing all", tg.size())
			}
		}
	}
}
