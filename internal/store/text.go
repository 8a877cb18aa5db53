package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ironsheep/region-trace/internal/segment"
)

// WriteText writes records in the text format.
func WriteText(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	for i, r := range records {
		fmt.Fprintf(bw, "region %d\n", i)
		var points []segment.Point
		if r.Mask != nil {
			points = segment.MarkedPoints(r.Mask)
		}
		writePoints(bw, points)
	}

	for i, r := range records {
		fmt.Fprintf(bw, "perimeter %d\n", i)
		for _, loop := range r.Perimeters {
			writePoints(bw, loop)
		}
	}

	return bw.Flush()
}

func writePoints(w *bufio.Writer, points []segment.Point) {
	for _, p := range points {
		fmt.Fprintf(w, "[%d, %d] ", p.X, p.Y)
	}
	w.WriteByte('\n')
}

// SaveText writes records to a text file at path, replacing it.
func SaveText(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteText(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// TextDump is the parsed content of a text file.
type TextDump struct {
	// Regions holds each region's marked points in file order.
	Regions [][]segment.Point
	// Perimeters holds each region's loops in file order.
	Perimeters []segment.PerimeterSet
}

var pointPattern = regexp.MustCompile(`\[(-?\d+), (-?\d+)\]`)

// ReadText parses the text format. Region and perimeter indices must run 0, 1, 2...
func ReadText(r io.Reader) (*TextDump, error) {
	dump := &TextDump{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	const (
		none = iota
		regionLine
		perimeterLines
	)
	state := none
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if kind, idx, ok := header(line); ok {
			switch kind {
			case "region":
				if idx != len(dump.Regions) {
					return nil, fmt.Errorf("line %d: region %d out of order", lineNo, idx)
				}
				dump.Regions = append(dump.Regions, nil)
				state = regionLine
			case "perimeter":
				if idx != len(dump.Perimeters) {
					return nil, fmt.Errorf("line %d: perimeter %d out of order", lineNo, idx)
				}
				dump.Perimeters = append(dump.Perimeters, segment.PerimeterSet{})
				state = perimeterLines
			}
			continue
		}

		points, err := parsePoints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch state {
		case regionLine:
			dump.Regions[len(dump.Regions)-1] = points
			state = none
		case perimeterLines:
			if len(points) == 0 {
				continue
			}
			last := len(dump.Perimeters) - 1
			dump.Perimeters[last] = append(dump.Perimeters[last], segment.Perimeter(points))
		default:
			if len(points) > 0 {
				return nil, fmt.Errorf("line %d: points outside a region or perimeter block", lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}

	return dump, nil
}

func header(line string) (string, int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || (fields[0] != "region" && fields[0] != "perimeter") {
		return "", 0, false
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, false
	}
	return fields[0], idx, true
}

func parsePoints(line string) ([]segment.Point, error) {
	matches := pointPattern.FindAllStringSubmatch(line, -1)
	rest := strings.TrimSpace(pointPattern.ReplaceAllString(line, ""))
	if rest != "" {
		return nil, fmt.Errorf("unexpected text %q", rest)
	}

	points := make([]segment.Point, 0, len(matches))
	for _, m := range matches {
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		points = append(points, segment.Pt(x, y))
	}
	return points, nil
}
