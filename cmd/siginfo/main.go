// Command siginfo prints statistics, peaks and the spectrum of a sampled
// signal.
//
// Samples are read one per line from the named file or from stdin. Blank
// lines and lines starting with '#' are skipped.
//
// Usage:
//
//	siginfo [flags] [file]
//
// Examples:
//
//	siginfo -fs 100 ppg.txt
//	siginfo -fs 100 -mpd 40 -mpp 500 -clean ppg.txt
//	siginfo -fs 8000 -taper hann -bins 5 < tone.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-toolbox/dsp/artifact"
	"github.com/cwbudde/algo-toolbox/dsp/peaks"
	"github.com/cwbudde/algo-toolbox/dsp/spectrum"
	"github.com/cwbudde/algo-toolbox/dsp/window"
	applog "github.com/cwbudde/algo-toolbox/internal/log"
	frequencystats "github.com/cwbudde/algo-toolbox/stats/frequency"
	timestats "github.com/cwbudde/algo-toolbox/stats/time"
	"go.uber.org/zap"
)

// minDominantHz keeps the DC bin and baseline drift out of the dominant
// frequency.
const minDominantHz = 0.5

var tapers = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
}

type options struct {
	sampleRate float64
	winDur     float64
	hopDur     float64
	distance   float64
	prominence float64
	threshold  float64
	clean      bool
	taper      window.Type
	bins       int
	binOffset  int
}

func main() {
	fs := flag.Float64("fs", 100, "sample rate in Hz")
	winDur := flag.Float64("window", 2, "segment window length in seconds")
	hopDur := flag.Float64("hop", 1, "segment hop in seconds")
	mpd := flag.Float64("mpd", 1, "minimum peak distance in samples")
	mpp := flag.Float64("mpp", 0, "minimum peak prominence")
	thr := flag.Float64("thr", artifact.DefaultThreshold, "peak-to-peak range that triggers artifact removal")
	clean := flag.Bool("clean", false, "remove artifacts before analysis")
	taperName := flag.String("taper", "rectangular", "taper applied before the FFT and to each segment")
	bins := flag.Int("bins", 10, "number of strongest spectrum bins to print")
	offset := flag.Int("bin-offset", spectrum.DefaultBinOffset, "bins kept beyond L/2")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: siginfo [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Prints statistics, peaks and spectrum of a signal, one sample per line.\n")
		fmt.Fprintf(os.Stderr, "Without a file, samples are read from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := applog.Must(*debug)
	defer func() { _ = logger.Sync() }()

	taper, ok := tapers[strings.ToLower(strings.TrimSpace(*taperName))]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown taper %q\n", *taperName)
		os.Exit(2)
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	samples, err := readSamples(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("samples read", zap.Int("count", len(samples)), zap.Float64("fs", *fs))

	opts := options{
		sampleRate: *fs,
		winDur:     *winDur,
		hopDur:     *hopDur,
		distance:   *mpd,
		prominence: *mpp,
		threshold:  *thr,
		clean:      *clean,
		taper:      taper,
		bins:       *bins,
		binOffset:  *offset,
	}
	if err := run(os.Stdout, samples, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readSamples(r io.Reader) ([]float64, error) {
	var out []float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	return out, nil
}

func run(w io.Writer, samples []float64, opts options) error {
	if opts.clean {
		cleaned, err := artifact.Remove(samples, artifact.WithThreshold(opts.threshold))
		if err != nil {
			return err
		}
		samples = cleaned
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if err := printStats(tw, samples, opts.sampleRate); err != nil {
		return err
	}

	found, err := peaks.Find(samples, peaks.WithDistance(opts.distance), peaks.WithProminence(opts.prominence))
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "Peaks\t%d\n", len(found))
	if len(found) > 1 {
		first := float64(found[0].Index) / opts.sampleRate
		last := float64(found[len(found)-1].Index) / opts.sampleRate
		fmt.Fprintf(tw, "Peak rate [1/min]\t%.2f\n", float64(len(found)-1)/(last-first)*60)
	}

	segs, err := window.Segment(samples, opts.sampleRate, opts.winDur, opts.hopDur, window.WithTaper(opts.taper))
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "Segments\t%d x %d (overlap %d)\n", segs.WindowSamples, segs.Len(), segs.OverlapSamples())
	fmt.Fprintln(tw)

	res, err := spectrum.Fourier(samples, opts.sampleRate,
		spectrum.WithBinOffset(opts.binOffset),
		spectrum.WithWindow(opts.taper),
		spectrum.WithRenderer(tableRenderer(tw, opts.bins)),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw)

	if err := printShape(tw, res); err != nil {
		return err
	}

	return tw.Flush()
}

func printShape(tw io.Writer, res spectrum.Result) error {
	shape, err := frequencystats.Describe(res.Freq, res.Magnitude)
	if err != nil {
		return err
	}

	fmt.Fprintf(tw, "Centroid [Hz]\t%.4f\n", shape.Centroid)
	fmt.Fprintf(tw, "Spread [Hz]\t%.4f\n", shape.Spread)
	fmt.Fprintf(tw, "Flatness\t%.4f\n", shape.Flatness)
	fmt.Fprintf(tw, "Rolloff %.0f%% [Hz]\t%.4f\n", frequencystats.DefaultRolloff*100, shape.Rolloff)
	fmt.Fprintf(tw, "Bandwidth 3dB [Hz]\t%.4f\n", shape.Bandwidth)

	if f, _, ok := frequencystats.Dominant(res.Freq, res.Magnitude, minDominantHz); ok {
		fmt.Fprintf(tw, "Dominant [Hz]\t%.4f (%.1f /min)\n", f, f*60)
	}

	return nil
}

func printStats(tw io.Writer, samples []float64, fs float64) error {
	mean, variance := timestats.Moments(samples)

	fmt.Fprintf(tw, "Samples\t%d\n", len(samples))
	fmt.Fprintf(tw, "Duration [s]\t%.3f\n", float64(len(samples))/fs)
	fmt.Fprintf(tw, "Mean\t%.4f\n", mean)
	fmt.Fprintf(tw, "Variance\t%.4f\n", variance)
	fmt.Fprintf(tw, "Median\t%.4f\n", timestats.Median(samples))
	fmt.Fprintf(tw, "Peak-to-peak\t%.4f\n", timestats.PeakToPeak(samples))

	z, err := timestats.ZScore(samples)
	if err != nil {
		fmt.Fprintf(tw, "Z-score\tn/a (%v)\n", err)
		return nil
	}
	outliers := 0
	for _, v := range z {
		if v > artifact.OutlierZ {
			outliers++
		}
	}
	fmt.Fprintf(tw, "Samples with z > %.0f\t%d\n", artifact.OutlierZ, outliers)

	return nil
}

// tableRenderer prints the n strongest bins, strongest first.
func tableRenderer(w io.Writer, n int) spectrum.Renderer {
	return func(x, y []float64, labels spectrum.PlotLabels) error {
		order := make([]int, len(y))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return y[order[a]] > y[order[b]] })
		if n < len(order) {
			order = order[:n]
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", labels.Title, labels.X, labels.Y); err != nil {
			return err
		}
		for _, i := range order {
			if _, err := fmt.Fprintf(w, "%d\t%.4f\t%.6f\n", i, x[i], y[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
