package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"aroma/internal/classifier"
	"aroma/internal/config"
	"aroma/internal/intents"
	"aroma/internal/textproc"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.LoadTrainConfig()
	intentsPath := flag.String("intents", cfg.IntentsPath, "path to the intents catalog")
	modelPath := flag.String("model", cfg.ModelPath, "path to write the trained model")
	seed := flag.Int64("seed", cfg.RandomSeed, "random seed, 0 uses the clock")
	flag.Parse()

	catalog, err := intents.Load(*intentsPath)
	if err != nil {
		logger.Error("load intents failed", "path", *intentsPath, "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "intents", catalog.Count(), "examples", catalog.ExampleCount())

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	normalizer := textproc.New(textproc.DefaultConfig())
	clf := classifier.New(classifier.DefaultConfig(), normalizer, *modelPath,
		rand.New(rand.NewSource(rngSeed)), logger)

	report, err := clf.Train(catalog.Examples())
	if err != nil {
		logger.Error("training failed", "error", err)
		os.Exit(1)
	}
	if err := clf.Save(); err != nil {
		logger.Error("save model failed", "path", *modelPath, "error", err)
		os.Exit(1)
	}

	fmt.Printf("trained %d classes on %d samples\n", len(report.Classes), report.Samples)
	if report.HeldOut {
		fmt.Printf("held-out accuracy: %.3f\n", report.Accuracy)
	} else {
		fmt.Println("corpus too small for a held-out split, trained on everything")
	}
	fmt.Printf("model written to %s\n", *modelPath)
}
