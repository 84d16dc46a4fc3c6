package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/moltop/internal/export"
	"github.com/san-kum/moltop/internal/fragments"
	"github.com/san-kum/moltop/internal/molfile"
	"github.com/san-kum/moltop/internal/storage"
	"github.com/san-kum/moltop/internal/topology"
	"github.com/san-kum/moltop/internal/tui"
	"github.com/san-kum/moltop/internal/viz"
)

// loadSource returns the molecule named by --preset, --snapshot or the
// first argument, together with the remaining arguments.
func loadSource(args []string, extra int) (*molfile.Document, []string, error) {
	switch {
	case preset != "" && snapshot != "":
		return nil, nil, errors.New("--preset and --snapshot are mutually exclusive")
	case preset != "":
		if len(args) != extra {
			return nil, nil, fmt.Errorf("expected %d arguments with --preset, got %d", extra, len(args))
		}
		doc, err := presetDocument(preset)
		return doc, args, err
	case snapshot != "":
		if len(args) != extra {
			return nil, nil, fmt.Errorf("expected %d arguments with --snapshot, got %d", extra, len(args))
		}
		doc, err := storage.New(cfg.DataDir).LoadDocument(snapshot)
		return doc, args, err
	}

	if len(args) != extra+1 {
		return nil, nil, errors.New("expected a molecule file, --preset or --snapshot")
	}
	doc, err := molfile.Load(args[0])
	return doc, args[1:], err
}

func presetDocument(name string) (*molfile.Document, error) {
	family, molecule, ok := strings.Cut(name, "/")
	if !ok {
		return nil, fmt.Errorf("preset must be family/name, got %q", name)
	}
	doc := molfile.GetPreset(family, molecule)
	if doc == nil {
		return nil, fmt.Errorf("unknown preset: %s (available in %s: %v)", name, family, molfile.ListPresets(family))
	}
	return doc, nil
}

func buildSource(args []string, extra int) (*molfile.Document, *topology.Topology, []string, error) {
	doc, rest, err := loadSource(args, extra)
	if err != nil {
		return nil, nil, nil, err
	}
	top, err := doc.Build(topology.WithLogger(logger))
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("molecule built", "name", doc.Name, "atoms", top.NAtoms(), "bonds", len(top.Bonds()))
	return doc, top, rest, nil
}

func atomArgs(args []string) ([]int, error) {
	indices := make([]int, len(args))
	for k, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid atom index %q", arg)
		}
		indices[k] = i
	}
	return indices, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type infoReport struct {
	Name      string  `json:"name"`
	Formula   string  `json:"formula"`
	Atoms     int     `json:"atoms"`
	Bonds     int     `json:"bonds"`
	Angles    int     `json:"angles"`
	Dihedrals int     `json:"dihedrals"`
	Residues  int     `json:"residues"`
	Fragments [][]int `json:"fragments"`
}

func showInfo(cmd *cobra.Command, args []string) error {
	doc, top, _, err := buildSource(args, 0)
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), infoReport{
			Name:      doc.Name,
			Formula:   viz.Formula(top),
			Atoms:     top.NAtoms(),
			Bonds:     len(top.Bonds()),
			Angles:    len(top.Angles()),
			Dihedrals: len(top.Dihedrals()),
			Residues:  len(top.Residues()),
			Fragments: fragments.Fragments(top),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), viz.Summary(doc.Name, top))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, "preset families:")
		for _, family := range molfile.Families() {
			fmt.Fprintf(out, "  %s\n", family)
		}
		return nil
	}

	presets := molfile.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Fprintf(out, "no presets for family: %s\n", args[0])
		return nil
	}
	fmt.Fprintf(out, "presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Fprintf(out, "  %s/%s\n", args[0], p)
	}
	return nil
}

func plotDegrees(cmd *cobra.Command, args []string) error {
	_, top, _, err := buildSource(args, 0)
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string][]int{"histogram": viz.DegreeHistogram(top)})
	}

	fmt.Fprintln(cmd.OutOrStdout(), viz.PlotDegrees(top, cfg.Output.PlotWidth, cfg.Output.PlotHeight))
	return nil
}

func listFragments(cmd *cobra.Command, args []string) error {
	_, top, _, err := buildSource(args, 0)
	if err != nil {
		return err
	}

	frags := fragments.Fragments(top)
	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), frags)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAGMENT\tATOMS\tMEMBERS")
	for k, frag := range frags {
		fmt.Fprintf(w, "%d\t%d\t%v\n", k, len(frag), frag)
	}
	return w.Flush()
}

func bondPath(cmd *cobra.Command, args []string) error {
	_, top, rest, err := buildSource(args, 2)
	if err != nil {
		return err
	}
	ends, err := atomArgs(rest)
	if err != nil {
		return err
	}

	path, err := fragments.BondPath(top, ends[0], ends[1])
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]any{"path": path, "bonds": len(path) - 1})
	}

	names := make([]string, len(path))
	for k, i := range path {
		atom, _ := top.Atom(i)
		names[k] = fmt.Sprintf("%s(%d)", atom.Name, i)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d bonds\n", strings.Join(names, " - "), len(path)-1)
	return nil
}

func residuesLinked(cmd *cobra.Command, args []string) error {
	_, top, rest, err := buildSource(args, 2)
	if err != nil {
		return err
	}
	atoms, err := atomArgs(rest)
	if err != nil {
		return err
	}

	var residues [2]topology.Residue
	for k, i := range atoms {
		if _, err := top.Atom(i); err != nil {
			return err
		}
		r, ok := top.Residue(i)
		if !ok {
			return fmt.Errorf("atom %d is not in a residue", i)
		}
		residues[k] = r
	}

	linked := top.AreLinked(residues[0], residues[1])
	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]bool{"linked": linked})
	}

	verdict := "not linked"
	if linked {
		verdict = "linked"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s and %s: %s\n", residues[0], residues[1], verdict)
	return nil
}

func checkFiles(cmd *cobra.Command, args []string) error {
	docs, err := molfile.LoadAll(cmd.Context(), args)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tNAME\tATOMS\tBONDS\tSTATUS")

	failed := 0
	for k, doc := range docs {
		top, err := doc.Build(topology.WithLogger(logger))
		if err != nil {
			failed++
			logger.Warn("invalid molecule", "file", args[k], "error", err)
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", args[k], doc.Name, len(doc.Atoms), len(doc.Bonds), err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\tok\n", args[k], doc.Name, top.NAtoms(), len(top.Bonds()))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files are invalid", failed, len(docs))
	}
	return nil
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	doc, _, err := loadSource(args, 0)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	snapshotID, err := st.Save(doc)
	if err != nil {
		return err
	}
	logger.Info("snapshot saved", "id", snapshotID, "dir", cfg.DataDir)

	fmt.Fprintln(cmd.OutOrStdout(), snapshotID)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	snapshots, err := st.List()
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), snapshots)
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tATOMS\tBONDS\tANGLES\tDIHEDRALS\tRESIDUES")

	for _, s := range snapshots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			s.ID,
			s.Name,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Counts["atoms"],
			s.Counts["bonds"],
			s.Counts["angles"],
			s.Counts["dihedrals"],
			s.Counts["residues"],
		)
	}

	return w.Flush()
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	snapshotID := args[0]

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(snapshotID)
	if err != nil {
		return err
	}
	bonds, err := st.LoadBonds(snapshotID)
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" {
		pairs := make([][2]int, len(bonds))
		for k, b := range bonds {
			pairs[k][0], _ = b.At(0)
			pairs[k][1], _ = b.At(1)
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{"metadata": meta, "bonds": pairs})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", meta.ID, meta.Name)
	fmt.Fprintf(out, "saved %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	for _, key := range []string{"atoms", "bonds", "angles", "dihedrals", "residues", "fragments"} {
		fmt.Fprintf(out, "  %-10s %d\n", key, meta.Counts[key])
	}
	fmt.Fprintln(out, "bonds:")
	for _, b := range bonds {
		fmt.Fprintf(out, "  %s\n", b)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	doc, _, err := loadSource(args, 0)
	if err != nil {
		return err
	}
	if _, err := doc.Build(); err != nil {
		return err
	}
	return storage.ExportJSON(outPath, doc)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, top, _, err := buildSource(args, 0)
	if err != nil {
		return err
	}
	if svgSize <= 0 {
		return fmt.Errorf("invalid size: %d", svgSize)
	}

	svg := export.GraphToSVG(top, svgSize)
	if outPath == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}
	return os.WriteFile(outPath, []byte(svg+"\n"), 0644)
}

func browse(cmd *cobra.Command, args []string) error {
	doc, top, _, err := buildSource(args, 0)
	if err != nil {
		return err
	}
	return tui.Run(doc.Name, top)
}
