package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arielfikru/NekkoSub/internal/convert"
	"github.com/arielfikru/NekkoSub/internal/logger"
	"github.com/arielfikru/NekkoSub/internal/model"
	"github.com/arielfikru/NekkoSub/internal/subtitle"
	"github.com/arielfikru/NekkoSub/internal/watcher"
)

func main() {
	var args struct {
		Input   []string `arg:"positional,required" help:"input .ass files (directories with --watch)"`
		Output  string   `arg:"-o,--output" help:"output .json path (single input only)"`
		Preview bool     `arg:"-p,--preview" help:"review extracted dialogues before writing"`
		Watch   bool     `arg:"-w,--watch" help:"watch input directories for new .ass files"`
	}
	arg.MustParse(&args)

	conf := convert.LoadDefaultOrEmpty()

	if args.Watch {
		if args.Preview {
			exitWithErr(errors.New("--watch and --preview cannot be combined"))
		}
		runWatch(args.Input, conf)
		return
	}

	if args.Output != "" && len(args.Input) > 1 {
		exitWithErr(errors.New("-o/--output is only valid with a single input"))
	}

	for _, inputPath := range args.Input {

		if err := validateInputPath(inputPath); err != nil {
			exitWithErr(err)
		}

		file, err := os.Open(inputPath)
		if err != nil {
			exitWithErr(fmt.Errorf("open file: %w", err))
		}
		dialogues, err := subtitle.ExtractDialogues(file)
		file.Close()
		if err != nil {
			exitWithErr(err)
		}

		if args.Preview {
			switch previewChoice(inputPath, dialogues, conf.Limit()) {
			case previewSkip:
				continue
			case previewQuit:
				return
			}
		}

		outData, err := subtitle.FormatJSON(dialogues, conf.Indent())
		if err != nil {
			exitWithErr(err)
		}

		outPath := args.Output
		if outPath == "" {
			outPath = deriveOutputPath(inputPath)
		}
		if err := os.WriteFile(outPath, outData, 0644); err != nil {
			exitWithErr(fmt.Errorf("write output: %w", err))
		}

		fmt.Printf("Successfully converted '%s' to '%s'\n", inputPath, outPath)
		fmt.Printf("Extracted %d dialogue lines\n", len(dialogues))
	}
}

func validateInputPath(p string) error {
	stat, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input file not found: %s", p)
		}
		return fmt.Errorf("stat input: %w", err)
	}
	if stat.IsDir() {
		return errors.New("input is a directory; expected a file")
	}
	if ext := filepath.Ext(p); !strings.EqualFold(ext, ".ass") {
		return fmt.Errorf("unsupported extension: %q (only .ass)", ext)
	}
	return nil
}

func deriveOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// --- preview ---

type previewAction int

const (
	previewApply previewAction = iota
	previewSkip
	previewQuit
)

func previewChoice(inputPath string, dialogues []model.Dialogue, limit int) previewAction {
	sbContent := strings.Builder{}
	sbContent.WriteString("\n\n# NekkoSub\n\n## " + filepath.Base(inputPath) + "\n\n")
	fmt.Fprintf(&sbContent, "%d dialogue lines extracted\n\n", len(dialogues))

	if len(dialogues) > 0 {
		sbContent.WriteString("| # | Start | End | Dialog |\n")
		sbContent.WriteString("| --- | --- | --- | --- |\n")
		for i, d := range dialogues {
			if i >= limit {
				fmt.Fprintf(&sbContent, "| ... | | | %d more lines |\n", len(dialogues)-limit)
				break
			}
			fmt.Fprintf(&sbContent, "| %d | %s | %s | %s |\n", i+1, d.StartTime, d.EndTime, d.Text)
		}
	} else {
		sbContent.WriteString("Nothing to convert...\n")
	}

	vpModel, err := model.NewModel(sbContent.String())
	if err != nil {
		exitWithErr(fmt.Errorf("new model: %w", err))
	}

	retModel, err := tea.NewProgram(vpModel, tea.WithMouseAllMotion()).Run()
	if err != nil {
		exitWithErr(fmt.Errorf("run tea program: %w", err))
	}
	ui, ok := retModel.(model.UIModel)
	if !ok {
		exitWithErr(errors.New("retModel is not of type UIModel"))
	}
	switch {
	case ui.Quit:
		return previewQuit
	case ui.Skip:
		return previewSkip
	}
	return previewApply
}

// --- watch mode ---

func runWatch(dirs []string, conf convert.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.New("info")

	handler := func(ctx context.Context, path string) error {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer file.Close()

		dialogues, err := subtitle.ExtractDialogues(file)
		if err != nil {
			return err
		}
		outData, err := subtitle.FormatJSON(dialogues, conf.Indent())
		if err != nil {
			return err
		}
		outPath := deriveOutputPath(path)
		if err := os.WriteFile(outPath, outData, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info(ctx, "Converted %s (%d dialogue lines) -> %s", path, len(dialogues), outPath)
		return nil
	}

	errChan := make(chan error, len(dirs))
	watchers := make([]watcher.Watcher, 0, len(dirs))
	for _, dir := range dirs {
		stat, err := os.Stat(dir)
		if err != nil {
			exitWithErr(fmt.Errorf("stat watch dir: %w", err))
		}
		if !stat.IsDir() {
			exitWithErr(fmt.Errorf("watch input is not a directory: %s", dir))
		}
		w, err := watcher.New(dir, handler, log, conf.Concurrency())
		if err != nil {
			exitWithErr(err)
		}
		watchers = append(watchers, w)
		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()
	}
	defer func() {
		for _, w := range watchers {
			w.Stop()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}
	cancel()
}
