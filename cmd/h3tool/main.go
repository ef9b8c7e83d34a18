// Command h3tool exposes the h3geo engine's core operations from the
// shell: encoding/decoding cells, cell boundaries, walking the grid
// (k-ring), and compacting/uncompacting cell sets.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samfargo/h3geo/h3geo"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "h3tool",
		Short: "h3tool: inspect and traverse the h3geo hexagonal grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			showVersion, _ := cmd.Flags().GetBool("version")
			if showVersion {
				fmt.Printf("h3tool version %s (commit: %s)\n", version, commit)
				return nil
			}
			return cmd.Help()
		},
	}
	cmd.Flags().BoolP("version", "v", false, "Show version information")

	cmd.AddCommand(newGeoToCellCommand())
	cmd.AddCommand(newCellToGeoCommand())
	cmd.AddCommand(newCellBoundaryCommand())
	cmd.AddCommand(newGridDiskCommand())
	cmd.AddCommand(newCompactCommand())
	cmd.AddCommand(newUncompactCommand())
	return cmd
}

func newGeoToCellCommand() *cobra.Command {
	var lat, lng float64
	var res int
	cmd := &cobra.Command{
		Use:   "geo-to-cell",
		Short: "Encode a latitude/longitude pair into a cell index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := h3geo.GeoToCell(h3geo.FromDegrees(lat, lng), res)
			if err != nil {
				return err
			}
			fmt.Println(h3geo.ToString(cell))
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude in degrees")
	cmd.Flags().IntVar(&res, "res", 9, "Target resolution (0-15)")
	return cmd
}

func newCellToGeoCommand() *cobra.Command {
	var cellStr string
	cmd := &cobra.Command{
		Use:   "cell-to-geo",
		Short: "Decode a cell index to its center latitude/longitude",
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseCellArg(cellStr, args)
			if err != nil {
				return err
			}
			geo, err := h3geo.CellToLatLng(cell)
			if err != nil {
				return err
			}
			fmt.Printf("%.8f,%.8f\n", degrees(geo.Lat), degrees(geo.Lng))
			return nil
		},
	}
	cmd.Flags().StringVar(&cellStr, "cell", "", "Cell index as hex")
	return cmd
}

func newCellBoundaryCommand() *cobra.Command {
	var cellStr string
	cmd := &cobra.Command{
		Use:   "cell-boundary",
		Short: "Print a cell's boundary ring as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseCellArg(cellStr, args)
			if err != nil {
				return err
			}
			ring, err := h3geo.CellBoundary(cell)
			if err != nil {
				return err
			}
			coords := make([][2]float64, len(ring))
			for i, p := range ring {
				coords[i] = [2]float64{degrees(p.Lng), degrees(p.Lat)}
			}
			return json.NewEncoder(os.Stdout).Encode(coords)
		},
	}
	cmd.Flags().StringVar(&cellStr, "cell", "", "Cell index as hex")
	return cmd
}

func newGridDiskCommand() *cobra.Command {
	var cellStr string
	var k int
	cmd := &cobra.Command{
		Use:   "k-ring",
		Short: "List every cell within k grid steps of a cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseCellArg(cellStr, args)
			if err != nil {
				return err
			}
			disk, err := h3geo.GridDisk(cell, k)
			if err != nil {
				return err
			}
			for _, c := range disk {
				fmt.Println(h3geo.ToString(c))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cellStr, "cell", "", "Cell index as hex")
	cmd.Flags().IntVar(&k, "k", 1, "Ring radius")
	return cmd
}

func newCompactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Compact a newline-separated list of cell indexes read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readCells(os.Stdin)
			if err != nil {
				return err
			}
			compacted, err := h3geo.CompactCells(cells)
			if err != nil {
				return err
			}
			for _, c := range compacted {
				fmt.Println(h3geo.ToString(c))
			}
			return nil
		},
	}
	return cmd
}

func newUncompactCommand() *cobra.Command {
	var res int
	cmd := &cobra.Command{
		Use:   "uncompact",
		Short: "Expand a newline-separated list of cell indexes read from stdin to a resolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readCells(os.Stdin)
			if err != nil {
				return err
			}
			expanded, err := h3geo.UncompactCells(cells, res)
			if err != nil {
				return err
			}
			for _, c := range expanded {
				fmt.Println(h3geo.ToString(c))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&res, "res", 9, "Target resolution")
	return cmd
}

func parseCellArg(flagVal string, positional []string) (h3geo.Index, error) {
	s := flagVal
	if s == "" && len(positional) > 0 {
		s = positional[0]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("a cell index is required")
	}
	return h3geo.FromString(s)
}

func readCells(f *os.File) ([]h3geo.Index, error) {
	var cells []h3geo.Index
	var buf strings.Builder
	data := make([]byte, 4096)
	for {
		n, err := f.Read(data)
		buf.Write(data[:n])
		if err != nil {
			break
		}
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx, err := h3geo.FromString(line)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", line, err)
		}
		cells = append(cells, idx)
	}
	return cells, nil
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
