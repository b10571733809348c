package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	publicip "github.com/ghztomash/public-ip-address"
	"github.com/ghztomash/public-ip-address/config"
	"github.com/ghztomash/public-ip-address/lookup"
)

var (
	app = kingpin.New(
		"publicip",
		"Resolve a public IP address and its geolocation")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("PUBLICIP_DEBUG").
		Bool()
	configFile = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("PUBLICIP_CONFIG").
			File()
	provider = app.Flag("provider", "Pin a single provider, no fallback.").
			Short('p').
			Envar("PUBLICIP_PROVIDER").
			String()
	apiKey = app.Flag("key", "API key for the pinned provider.").
		Short('k').
		Envar("PUBLICIP_API_KEY").
		String()
	noCache = app.Flag("no-cache", "Bypass cache reads.").
		Short('n').
		Bool()
	encrypt = app.Flag("encrypt", "Encrypt the cache file at rest.").
		Short('e').
		Bool()
	purge = app.Flag("purge", "Remove the cache file and exit.").
		Bool()
	targets = app.Arg("targets", "IP addresses to look up. None means self.").
		Strings()
)

func init() {
	app.Version("1.0.0")
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := publicip.Options{
		Provider:     *provider,
		APIKey:       *apiKey,
		ForceRefresh: *noCache,
		EncryptCache: *encrypt,
		Logger:       logger{},
	}

	if *configFile != nil {
		conf, err := config.Parse(*configFile)
		if err != nil {
			log.Fatal(err.Error())
		}

		applyConfig(&opts, conf)
	}

	client, err := publicip.NewClient(opts)
	if err != nil {
		log.Fatal(err.Error())
	}

	defer client.Close() // nolint: errcheck

	if *purge {
		if err := client.PurgeCache(); err != nil {
			log.Fatal(err.Error())
		}

		return
	}

	if err := run(client, *targets); err != nil {
		log.Fatal(err.Error())
	}
}

func run(client *publicip.Client, addresses []string) error {
	parsed := make([]lookup.Target, 0, len(addresses))

	for _, v := range addresses {
		target, err := lookup.ParseTarget(v)
		if err != nil {
			return err
		}

		parsed = append(parsed, target)
	}

	if len(parsed) == 0 {
		parsed = append(parsed, lookup.Self())
	}

	results, err := client.LookupBulk(context.Background(), parsed)
	if err != nil {
		return err
	}

	for _, v := range results {
		if v.Err != nil {
			log.WithField("target", v.Target.String()).Error(v.Err.Error())
			continue
		}

		fmt.Println(v.Response)
		fmt.Println()
	}

	return nil
}

func applyConfig(opts *publicip.Options, conf *config.Config) {
	if opts.Provider == "" {
		opts.Provider = conf.Provider
	}

	if opts.APIKey == "" {
		opts.APIKey = conf.Key(opts.Provider)
	}

	opts.CacheTTL = conf.TTL()
	opts.CachePath = conf.CachePath
	opts.EncryptCache = opts.EncryptCache || conf.EncryptCache
}

type logger struct{}

func (logger) LookupError(providerName string, err error) {
	log.WithField("provider", providerName).Debug(err.Error())
}

func (logger) CacheError(err error) {
	log.WithField("event", "cache").Warn(err.Error())
}
