package molfile

import "sort"

func residueID(v int64) *int64 { return &v }

var Presets = map[string]map[string]*Document{
	"water": {
		"monomer": {
			Name:  "water",
			Atoms: []AtomRecord{{Name: "O"}, {Name: "H1", Type: "H"}, {Name: "H2", Type: "H"}},
			Bonds: [][]int{{0, 1}, {0, 2}},
			Residues: []ResidueRecord{
				{Name: "HOH", ID: residueID(1), Atoms: []int{0, 1, 2}},
			},
		},
		"dimer": {
			Name: "water-dimer",
			Atoms: []AtomRecord{
				{Name: "O"}, {Name: "H1", Type: "H"}, {Name: "H2", Type: "H"},
				{Name: "O"}, {Name: "H1", Type: "H"}, {Name: "H2", Type: "H"},
			},
			Bonds: [][]int{{0, 1}, {0, 2}, {3, 4}, {3, 5}},
			Residues: []ResidueRecord{
				{Name: "HOH", ID: residueID(1), Atoms: []int{0, 1, 2}},
				{Name: "HOH", ID: residueID(2), Atoms: []int{3, 4, 5}},
			},
		},
	},
	"alkane": {
		"methane": {
			Name: "methane",
			Atoms: []AtomRecord{
				{Name: "C"}, {Name: "H1", Type: "H"}, {Name: "H2", Type: "H"}, {Name: "H3", Type: "H"}, {Name: "H4", Type: "H"},
			},
			Bonds: [][]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
		},
		"ethane": {
			Name: "ethane",
			Atoms: []AtomRecord{
				{Name: "C1", Type: "C"}, {Name: "C2", Type: "C"},
				{Name: "H11", Type: "H"}, {Name: "H12", Type: "H"}, {Name: "H13", Type: "H"},
				{Name: "H21", Type: "H"}, {Name: "H22", Type: "H"}, {Name: "H23", Type: "H"},
			},
			Bonds: [][]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 5}, {1, 6}, {1, 7}},
		},
		"butane-ua": {
			Name: "butane",
			Atoms: []AtomRecord{
				{Name: "C1", Type: "CH3"}, {Name: "C2", Type: "CH2"}, {Name: "C3", Type: "CH2"}, {Name: "C4", Type: "CH3"},
			},
			Bonds: [][]int{{0, 1}, {1, 2}, {2, 3}},
		},
	},
	"peptide": {
		"glycylglycine": {
			Name: "glycylglycine",
			Atoms: []AtomRecord{
				{Name: "N"}, {Name: "CA", Type: "C"}, {Name: "C"}, {Name: "O"},
				{Name: "N"}, {Name: "CA", Type: "C"}, {Name: "C"}, {Name: "O"}, {Name: "OXT", Type: "O"},
			},
			Bonds: [][]int{{0, 1}, {1, 2}, {2, 3}, {2, 4}, {4, 5}, {5, 6}, {6, 7}, {6, 8}},
			Residues: []ResidueRecord{
				{Name: "GLY", ID: residueID(1), Atoms: []int{0, 1, 2, 3}},
				{Name: "GLY", ID: residueID(2), Atoms: []int{4, 5, 6, 7, 8}},
			},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(family, name string) *Document {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	doc, ok := familyPresets[name]
	if !ok {
		return nil
	}
	return doc.Clone()
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Families() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
