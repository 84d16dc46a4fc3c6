package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/moltop/internal/fragments"
	"github.com/san-kum/moltop/internal/molfile"
	"github.com/san-kum/moltop/internal/topology"
)

const (
	metadataFile = "metadata.json"
	documentFile = "topology.yaml"
	bondsFile    = "bonds.csv"
)

// createFile opens snapshot files for writing.
var createFile = os.Create

// ErrNotFound is returned when a snapshot id does not name a saved snapshot.
var ErrNotFound = errors.New("storage: snapshot not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SnapshotMetadata struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Timestamp time.Time      `json:"timestamp"`
	Counts    map[string]int `json:"counts"`
}

// Save validates doc by building it, then writes a snapshot directory
// holding its metadata, the document itself and the bond list.
func (s *Store) Save(doc *molfile.Document) (string, error) {
	top, err := doc.Build()
	if err != nil {
		return "", err
	}

	name := snapshotName(doc.Name)
	snapshotID := fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
	snapshotDir := filepath.Join(s.baseDir, snapshotID)

	if err := os.MkdirAll(snapshotDir, 0755); err != nil {
		return "", err
	}

	meta := SnapshotMetadata{
		ID:        snapshotID,
		Name:      doc.Name,
		Timestamp: time.Now(),
		Counts: map[string]int{
			"atoms":     top.NAtoms(),
			"bonds":     len(top.Bonds()),
			"angles":    len(top.Angles()),
			"dihedrals": len(top.Dihedrals()),
			"residues":  len(top.Residues()),
			"fragments": len(fragments.Fragments(top)),
		},
	}

	if err := writeSnapshot(snapshotDir, meta, doc, top.Bonds()); err != nil {
		os.RemoveAll(snapshotDir)
		return "", err
	}

	return snapshotID, nil
}

func writeSnapshot(dir string, meta SnapshotMetadata, doc *molfile.Document, bonds []topology.Bond) error {
	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return err
	}
	if err := writeDocument(filepath.Join(dir, documentFile), doc); err != nil {
		return err
	}
	return writeBonds(filepath.Join(dir, bondsFile), bonds)
}

func snapshotName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" {
		return "molecule"
	}
	return name
}

func writeJSON(path string, v any) error {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDocument(path string, doc *molfile.Document) error {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return doc.Encode(file)
}

func writeBonds(path string, bonds []topology.Bond) error {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"i", "j"}); err != nil {
		return err
	}
	for _, b := range bonds {
		i, _ := b.At(0)
		j, _ := b.At(1)
		if err := w.Write([]string{strconv.Itoa(i), strconv.Itoa(j)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every snapshot, oldest first. A missing data
// directory holds no snapshots.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snapshots := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		snapshots = append(snapshots, *meta)
	}

	sort.SliceStable(snapshots, func(a, b int) bool {
		return snapshots[a].Timestamp.Before(snapshots[b].Timestamp)
	})
	return snapshots, nil
}

func (s *Store) Load(snapshotID string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(s.path(snapshotID, metadataFile))
	if err != nil {
		return nil, notFound(snapshotID, err)
	}

	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", snapshotID, err)
	}

	return &meta, nil
}

// LoadDocument reads back the document saved with the snapshot.
func (s *Store) LoadDocument(snapshotID string) (*molfile.Document, error) {
	file, err := os.Open(s.path(snapshotID, documentFile))
	if err != nil {
		return nil, notFound(snapshotID, err)
	}
	defer file.Close()

	return molfile.Decode(file)
}

// LoadBonds reads the bond list saved with the snapshot.
func (s *Store) LoadBonds(snapshotID string) ([]topology.Bond, error) {
	file, err := os.Open(s.path(snapshotID, bondsFile))
	if err != nil {
		return nil, notFound(snapshotID, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w", snapshotID, err)
	}

	if len(records) < 2 {
		return []topology.Bond{}, nil
	}

	bonds := make([]topology.Bond, 0, len(records)-1)
	for line, record := range records[1:] {
		i, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", snapshotID, line+2, err)
		}
		j, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", snapshotID, line+2, err)
		}
		bond, err := topology.NewBond(i, j)
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", snapshotID, line+2, err)
		}
		bonds = append(bonds, bond)
	}

	return bonds, nil
}

func (s *Store) path(snapshotID, file string) string {
	return filepath.Join(s.baseDir, filepath.Base(snapshotID), file)
}

func notFound(snapshotID string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, snapshotID)
	}
	return err
}
