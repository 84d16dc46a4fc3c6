package molfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/moltop/internal/topology"
)

// ErrFormat marks a document that can not be turned into a topology.
var ErrFormat = errors.New("molfile: malformed document")

type Document struct {
	Name     string          `yaml:"name" json:"name"`
	Atoms    []AtomRecord    `yaml:"atoms" json:"atoms"`
	Bonds    [][]int         `yaml:"bonds,omitempty,flow" json:"bonds,omitempty"`
	Residues []ResidueRecord `yaml:"residues,omitempty" json:"residues,omitempty"`
}

type AtomRecord struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
}

type ResidueRecord struct {
	Name  string `yaml:"name" json:"name"`
	ID    *int64 `yaml:"id,omitempty" json:"id,omitempty"`
	Atoms []int  `yaml:"atoms,flow" json:"atoms"`
}

// Decode reads one YAML or JSON document from r. Unknown fields are errors.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrFormat)
		}
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return &doc, nil
}

// Encode writes the document as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// EncodeJSON writes the document as indented JSON.
func (d *Document) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Build creates a topology holding the document's atoms, bonds and residues.
func (d *Document) Build(opts ...topology.Option) (*topology.Topology, error) {
	top := topology.New(opts...)

	for _, rec := range d.Atoms {
		atom := topology.NewAtom(rec.Name)
		if rec.Type != "" {
			atom.Type = rec.Type
		}
		top.AddAtom(atom)
	}

	for k, pair := range d.Bonds {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: bond %d: expected 2 atoms, got %d", ErrFormat, k, len(pair))
		}
		if err := top.AddBond(pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("molfile: bond %d (%d-%d): %w", k, pair[0], pair[1], err)
		}
	}

	for k, rec := range d.Residues {
		residue := topology.NewResidue(rec.Name)
		if rec.ID != nil {
			residue = topology.NewResidueWithID(rec.Name, *rec.ID)
		}
		for _, i := range rec.Atoms {
			residue.AddAtom(i)
		}
		if err := top.AddResidue(residue); err != nil {
			return nil, fmt.Errorf("molfile: residue %d (%s): %w", k, rec.Name, err)
		}
	}

	return top, nil
}

// FromTopology describes top as a document.
func FromTopology(name string, top *topology.Topology) *Document {
	doc := &Document{
		Name:  name,
		Atoms: make([]AtomRecord, 0, top.NAtoms()),
	}
	for i := 0; i < top.NAtoms(); i++ {
		atom, err := top.Atom(i)
		if err != nil {
			break
		}
		rec := AtomRecord{Name: atom.Name}
		if atom.Type != atom.Name {
			rec.Type = atom.Type
		}
		doc.Atoms = append(doc.Atoms, rec)
	}
	for _, b := range top.Bonds() {
		i, _ := b.At(0)
		j, _ := b.At(1)
		doc.Bonds = append(doc.Bonds, []int{i, j})
	}
	for _, r := range top.Residues() {
		rec := ResidueRecord{Name: r.Name(), Atoms: r.Atoms()}
		if id, ok := r.ID(); ok {
			rec.ID = &id
		}
		doc.Residues = append(doc.Residues, rec)
	}
	return doc
}

func (d *Document) Clone() *Document {
	out := &Document{
		Name:  d.Name,
		Atoms: slices.Clone(d.Atoms),
	}
	for _, pair := range d.Bonds {
		out.Bonds = append(out.Bonds, slices.Clone(pair))
	}
	for _, rec := range d.Residues {
		copied := ResidueRecord{Name: rec.Name, Atoms: slices.Clone(rec.Atoms)}
		if rec.ID != nil {
			id := *rec.ID
			copied.ID = &id
		}
		out.Residues = append(out.Residues, copied)
	}
	return out
}
