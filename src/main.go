// Package src contains the Main function of Grimoire. It sets everything up:
// configuration, logging, the catalog finders and the webserver. Then it serves
// until the process is asked to stop.
//
// It is in package src because it is imported from the project's root folder.
package src

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/ironsmile/grimoire/src/art"
	"github.com/ironsmile/grimoire/src/config"
	"github.com/ironsmile/grimoire/src/daemon"
	"github.com/ironsmile/grimoire/src/helpers"
	"github.com/ironsmile/grimoire/src/metallum"
	"github.com/ironsmile/grimoire/src/thumbnail"
	"github.com/ironsmile/grimoire/src/version"
	"github.com/ironsmile/grimoire/src/webserver"
)

const (
	// musicBrainzDelay is the minimal time between two requests to MusicBrainz.
	// One per second is what they ask for.
	musicBrainzDelay = 1 * time.Second

	shutdownTimeout = 10 * time.Second
)

// Main is the only thing run in the project's root main.go file.
// For all intent and purposes this is the main function.
func Main() {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}

	if showVersion, _ := flags.GetBool("version"); showVersion {
		version.Print(os.Stdout)
		return
	}

	if err := run(flags); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func run(flags *pflag.FlagSet) error {
	fs := afero.NewOsFs()

	userPath, err := helpers.ProjectUserPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(fs, flags, userPath)
	if err != nil {
		return err
	}

	if err := helpers.SetLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("setting log level: %w", err)
	}

	if cfg.LogFile != "" {
		if err := helpers.SetLogsFile(fs, cfg.LogFile); err != nil {
			return err
		}
	}

	if pidFile, _ := flags.GetString("pidfile"); pidFile != "" {
		if err := helpers.SetUpPidFile(fs, pidFile); err != nil {
			return err
		}
		defer helpers.RemovePidFile(fs, pidFile)
	}

	ctx, stop := daemon.StopContext(context.Background())
	defer stop()

	backends, closeBackends, err := newBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBackends()

	srv := webserver.NewServer(webserver.ServerConfig{
		Address:      cfg.Listen,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}, backends)

	if err := srv.Serve(); err != nil {
		return err
	}

	<-ctx.Done()
	log.Printf("Stopping Grimoire")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Errorf("stopping the webserver: %s", err)
	}
	srv.Wait()

	return nil
}

// newBackends creates everything the webserver needs according to cfg. The
// returned function releases all of them.
func newBackends(
	ctx context.Context,
	cfg config.Config,
) (webserver.Backends, func(), error) {
	cache := metallum.NewSearchCache(cfg.CacheCapacity)
	api := metallum.NewAPIClient(cfg.CatalogURL, cfg.UserAgent, cfg.Throttle, cache)
	api.SetRequestTimeout(cfg.RequestTimeout)

	thumbnails := thumbnail.New(ctx)

	backends := webserver.Backends{
		API:            api,
		Images:         api,
		Thumbnails:     thumbnails,
		ThumbnailWidth: cfg.ThumbnailWidth,
	}

	if cfg.CoverFallback.Enabled {
		backends.Covers = art.NewClient(cfg.CoverFallback.UserAgent, musicBrainzDelay)
	}

	closers := []func(){thumbnails.Cancel}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if !cfg.Browser.Enabled {
		return backends, closeAll, nil
	}

	browser, err := newBrowserClient(ctx, cfg, cache)
	if err != nil {
		closeAll()
		return webserver.Backends{}, nil, err
	}

	closers = append(closers, func() {
		if err := browser.Close(); err != nil {
			log.Errorf("closing the browser: %s", err)
		}
	})
	backends.Browser = browser
	backends.Cookies = browser

	return backends, closeAll, nil
}

func newBrowserClient(
	ctx context.Context,
	cfg config.Config,
	cache *metallum.SearchCache,
) (*metallum.BrowserClient, error) {
	log.Printf("Starting browser session")
	session, err := metallum.NewChromeSession(ctx, metallum.ChromeOptions{
		ExecPath:  cfg.Browser.ExecPath,
		Headless:  cfg.Browser.Headless,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	browser, err := metallum.NewBrowserClient(cfg.CatalogURL, session, cache)
	if err != nil {
		_ = session.Close()
		return nil, err
	}

	browser.SetWaitTimeout(cfg.Browser.WaitTimeout)
	if cfg.Browser.CookieName != "" {
		browser.SetCookieName(cfg.Browser.CookieName)
	}
	browser.SetCookie(cfg.Browser.Cookie)

	return browser, nil
}
