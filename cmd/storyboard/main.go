// Command storyboard generates a video production package from flags and
// prints its timeline, or the full package as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/coreybb/storyboard/config"
	"github.com/coreybb/storyboard/ebook"
	"github.com/coreybb/storyboard/generation"
	"github.com/coreybb/storyboard/intake"
	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/processing"
	"github.com/coreybb/storyboard/storage"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	brief     intake.BriefRequest
	outDir    string
	epub      bool
	jsonOut   bool
	exporting bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var minutes int

	fs := flag.NewFlagSet("storyboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.brief.Topic, "topic", "", "video topic (3-160 characters)")
	fs.IntVar(&minutes, "minutes", 5, "target duration in whole minutes (2-20)")
	fs.StringVar(&opts.brief.Style, "style", string(models.VideoStyleEducational), "educational, storytelling, cinematic, listicle, tutorial or news")
	fs.StringVar(&opts.brief.Audience, "audience", string(models.AudienceBeginner), "beginner, intermediate or advanced")
	fs.StringVar(&opts.brief.Tone, "tone", string(models.ToneFriendly), "friendly, authoritative, humorous, inspiring, casual or formal")
	fs.StringVar(&opts.brief.Language, "lang", models.DefaultLanguage, "BCP-47 language tag")
	fs.StringVar(&opts.outDir, "out", "", "export directory (defaults to the configured export dir when -epub is set)")
	fs.BoolVar(&opts.epub, "epub", false, "also export the package as an EPUB")
	fs.BoolVar(&opts.jsonOut, "json", false, "print the full package as JSON instead of the timeline table")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.brief.DurationMinutes = json.Number(strconv.Itoa(minutes))
	opts.exporting = opts.outDir != "" || opts.epub
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitValidation
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(stderr, "configuration: %v\n", err)
		return exitFailure
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	brief, err := intake.Validate(opts.brief)
	if err != nil {
		var ve *intake.ValidationError
		if errors.As(err, &ve) {
			for _, issue := range ve.Issues {
				fmt.Fprintf(stderr, "invalid %s: %s\n", issue.Field, issue.Message)
			}
			return exitValidation
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = cfg.ExportDir
	}
	processor := processing.NewPackageProcessor(
		generation.NewGenerationPipeline().WithLogger(logger),
		ebook.NewPackageGenerator(),
		storage.NewLocalFileStorer(outDir),
	)

	pkg, err := processor.Generate(ctx, brief)
	if err != nil {
		fmt.Fprintf(stderr, "generation failed: %v\n", err)
		return exitFailure
	}

	if opts.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pkg.Result); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return exitFailure
		}
	} else {
		printSummary(stdout, pkg)
	}

	if opts.exporting {
		formats := []models.ExportFormat{models.ExportFormatJSON}
		if opts.epub {
			formats = append(formats, models.ExportFormatEPUB)
		}
		exports, err := processor.Export(ctx, pkg, formats...)
		if err != nil {
			fmt.Fprintf(stderr, "export failed: %v\n", err)
			return exitFailure
		}
		for _, e := range exports {
			fmt.Fprintf(stderr, "wrote %s (%d bytes)\n", e.Path, e.Size)
		}
	}
	return exitOK
}

func printSummary(w io.Writer, pkg *processing.GeneratedPackage) {
	r := pkg.Result
	fmt.Fprintf(w, "%s\n%s\nPackage %s, %s, %d sections\n\n", r.Idea.Title, r.Idea.Hook, pkg.ID, r.Script.Duration, len(r.Outline))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Segment", "Start", "End", "On screen", "Video", "Audio"})
	table.SetAutoWrapText(false)
	for i, seg := range r.Script.Segments {
		ev := r.Editing.Timeline[i]
		table.Append([]string{
			seg.ID,
			seg.Start,
			seg.End,
			seg.OnScreenText,
			joinVideo(ev.Video),
			joinAudio(ev.Audio),
		})
	}
	table.Render()

	fmt.Fprintln(w, "\nChapters:")
	for _, ch := range r.Metadata.Chapters {
		fmt.Fprintf(w, "  %s %s\n", ch.Time, ch.Title)
	}
}

func joinVideo(steps []models.VideoStep) string {
	out := ""
	for i, s := range steps {
		if i > 0 {
			out += ", "
		}
		out += string(s.Action)
	}
	return out
}

func joinAudio(steps []models.AudioStep) string {
	out := ""
	for i, s := range steps {
		if i > 0 {
			out += ", "
		}
		out += string(s.Action)
	}
	return out
}
