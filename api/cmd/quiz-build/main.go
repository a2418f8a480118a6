package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quiz-bot/api/internal/config"
	"quiz-bot/api/internal/quiz"
)

var (
	srcDir  string
	outFile string
)

var rootCmd = &cobra.Command{
	Use:   "quiz-build",
	Short: "Build the question bank from raw KOI8-R archives",
	Long: `quiz-build parses a directory of raw quiz archive files (KOI8-R text,
"Вопрос N:" / "Ответ:" paragraph blocks) into questions.json, the UTF-8 bank
both bots load at startup. Parsing is done offline once; the serving processes
never re-parse the archives.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&srcDir, "src", "", "directory with raw .txt archives (default $QUESTIONS_DIRECTORY)")
	rootCmd.Flags().StringVar(&outFile, "out", "", "output bank file (default $ALL_QUESTIONS_FILE)")
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// окружение читаем здесь, после разбора флагов
	cfg := config.Load()
	if srcDir == "" {
		srcDir = cfg.QuestionsDir
	}
	if outFile == "" {
		outFile = cfg.QuestionsFile
	}

	answers, skipped, err := quiz.ParseDir(srcDir)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		logger.Warn("source skipped", zap.String("file", s.File), zap.Error(s.Err))
	}
	if err := quiz.SaveBank(outFile, answers); err != nil {
		return err
	}
	logger.Info("question bank written",
		zap.String("file", outFile),
		zap.Int("questions", len(answers)),
		zap.Int("skipped_sources", len(skipped)))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
