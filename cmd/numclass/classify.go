package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"numclass/internal/config"
	"numclass/internal/domain/entity"
	"numclass/internal/domain/service/classifier"
	"numclass/internal/domain/value"
	"numclass/internal/infrastructure/numbersapi"
	"numclass/internal/server"
	"numclass/pkg/contextx"
	"numclass/pkg/logx"
	"numclass/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var errInvalidNumber = errors.New("invalid number")

func newClassifyCmd() *cobra.Command {
	var noFact bool

	cmd := &cobra.Command{
		Use:   "classify <number>",
		Short: "Classify one number and print the JSON response",
		Example: `  numclass classify 371
  numclass classify --no-fact -- -5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			n, err := value.ParseNumber(&args[0])
			if err != nil {
				if encErr := writeJSON(out, rest.ClassificationError{Number: &args[0], Error: true}); encErr != nil {
					return encErr
				}

				return fmt.Errorf("%w: %w", errInvalidNumber, err)
			}

			// Логи в stderr, чтобы не мешать JSON в stdout.
			log, err := logx.New(cmd.ErrOrStderr(), slog.LevelWarn.String(), logx.FormatText)
			if err != nil {
				return fmt.Errorf("logx.New: %w", err)
			}

			ctx := contextx.WithLogger(cmd.Context(), log)

			var classification entity.Classification

			if noFact {
				classification, err = classifier.NewService(nil).Properties(ctx, n)
			} else {
				cfg, cfgErr := config.Load()
				if cfgErr != nil {
					return fmt.Errorf("config.Load: %w", cfgErr)
				}

				client, clientErr := numbersapi.NewClient(cfg.NumbersAPI, cfg.Log.FieldMaxLength)
				if clientErr != nil {
					return fmt.Errorf("numbersapi.NewClient: %w", clientErr)
				}

				classification, err = classifier.NewService(client).Classify(ctx, n)
			}

			if err != nil {
				log.Error("classify failed", logx.Error(err))
				return err
			}

			return writeJSON(out, server.NewRESTClassification(classification))
		},
	}

	cmd.Flags().BoolVar(&noFact, "no-fact", false, "skip the fun fact lookup")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}
