package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	candidates, err := words.LoadStartWords(cfg.StartWordsFile)
	if err != nil {
		return fmt.Errorf("%w: start words: %w", game.ErrConfiguration, err)
	}

	dict, closeDict, err := openDictionary(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%w: dictionary: %w", game.ErrConfiguration, err)
	}
	defer closeDict()

	dailyPicker := daily.Picker{Salt: cfg.DailySalt}
	var picker game.Picker = words.RandomPicker{}
	if cfg.RootWordMode == config.ModeDaily {
		picker = dailyPicker
	}

	eng, err := game.New(dict, picker, game.Config{
		MinLength: cfg.MinLength,
		WordBonus: cfg.WordBonus,
		Locale:    cfg.Locale,
	})
	if err != nil {
		return err
	}

	st := store.NewMemoryStore()
	go store.Janitor(ctx, st, time.Minute, cfg.SessionTTL)

	srv := httpserver.New(httpserver.Options{
		Engine:       eng,
		Daily:        dailyPicker,
		Store:        st,
		Candidates:   candidates,
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   cfg.SessionTTL,
		CookieName:   cfg.CookieName,
		CookieSecure: cfg.CookieSecure,
		ClientOrigin: cfg.ClientOrigin,
	})

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()

	log.Info().
		Str("port", cfg.Port).
		Int("rootWords", len(candidates)).
		Str("mode", cfg.RootWordMode).
		Str("locale", cfg.Locale).
		Msg("starting wordscramble server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// openDictionary builds the word oracle: SQLite when DICTIONARY_DB is set
// (importing the configured word list into it), otherwise in memory.
func openDictionary(ctx context.Context, cfg config.Config) (game.Dictionary, func(), error) {
	list, err := words.LoadDictionary(cfg.DictionaryFile)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DictionaryDB == "" {
		d := dictionary.NewMemory(cfg.Locale, list)
		log.Info().Int("words", d.Len(cfg.Locale)).Msg("in-memory dictionary loaded")
		return d, func() {}, nil
	}

	d, err := dictionary.OpenSQLite(cfg.DictionaryDB)
	if err != nil {
		return nil, nil, err
	}
	added, err := d.Import(ctx, cfg.Locale, list)
	if err != nil {
		_ = d.Close()
		return nil, nil, err
	}
	ev := log.Info().Str("db", cfg.DictionaryDB).Int("added", added)
	if total, err := d.Count(ctx, cfg.Locale); err != nil {
		log.Warn().Err(err).Msg("count dictionary words")
	} else {
		ev = ev.Int("words", total)
	}
	ev.Msg("sqlite dictionary ready")
	return d, func() {
		if err := d.Close(); err != nil {
			log.Warn().Err(err).Msg("close dictionary")
		}
	}, nil
}
