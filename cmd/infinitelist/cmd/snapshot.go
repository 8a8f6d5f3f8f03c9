package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-drift/infinitelist/pkg/host"
	"github.com/go-drift/infinitelist/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render a frame to PNG",
		Long: `Mount the list, scroll to the end of the loaded pages and render the
on-screen frame as a PNG image.

Fetches run synchronously, so every page requested by the scroll has
landed before the frame is drawn.

Flags:
  --rows N    Viewport height in rows (default: 12)
  --pages N   Pages to load by scrolling to the end (default: 1)
  --width N   Image width in pixels (default: 320)
  --text      Also print the frame as text`,
		Usage: "infinitelist snapshot [output.png] [--rows N] [--pages N] [--width N] [--text]",
		Run:   runSnapshot,
	})
}

type snapshotOptions struct {
	out   string
	rows  int
	pages int
	width int
	text  bool
}

func parseSnapshotArgs(args []string) (snapshotOptions, []string, error) {
	opts := snapshotOptions{out: "infinitelist.png"}
	var err error
	if opts.rows, args, err = extractInt(args, "--rows", 12); err != nil {
		return opts, nil, err
	}
	if opts.pages, args, err = extractInt(args, "--pages", 1); err != nil {
		return opts, nil, err
	}
	if opts.width, args, err = extractInt(args, "--width", render.DefaultImageOptions().Width); err != nil {
		return opts, nil, err
	}
	if opts.rows <= 0 || opts.pages <= 0 || opts.width <= 0 {
		return opts, nil, fmt.Errorf("--rows, --pages and --width must be positive")
	}
	var rest []string
	for _, arg := range args {
		if arg == "--text" {
			opts.text = true
			continue
		}
		rest = append(rest, arg)
	}
	return opts, rest, nil
}

func runSnapshot(args []string) error {
	opts, args, err := parseSnapshotArgs(args)
	if err != nil {
		return err
	}
	cfg, logger, rest, err := resolve(args)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("unexpected argument %q", rest[1])
	}
	if len(rest) == 1 {
		opts.out = rest[0]
	}

	ctx := context.Background()
	src, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	s, err := newSession(cfg, src, logger, nil, host.Options{
		Viewport: float64(opts.rows) * lineExtent,
	})
	if err != nil {
		return err
	}
	defer s.close()

	view := capture(s, opts.pages)

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	imgOpts := render.DefaultImageOptions()
	imgOpts.Width = opts.width
	if err := render.PNG(f, view, imgOpts); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if opts.text {
		r := render.NewTextRenderer(opts.width / 8)
		fmt.Fprintln(stdout, r.Render(view))
	}
	logger.Info("snapshot written", "path", opts.out, "mode", view.Mode, "items", view.Items, "rows", len(view.Rows))
	fmt.Fprintf(stdout, "Wrote %s (%s, %d items)\n", opts.out, view.Mode, view.Items)
	return nil
}

// capture mounts the session, loads pages by scrolling to the end after
// each one, and returns the final frame.
func capture(s *session, pages int) render.View {
	const maxPumps = 16
	s.settle(maxPumps)
	for i := 1; i < pages && !s.feed.Exhausted(); i++ {
		s.host.ScrollToEnd()
		s.settle(maxPumps)
	}
	return render.FromHost(s.host)
}
