// Package molfile reads and writes molecule documents and turns them into
// topologies.
//
// A document is a small YAML (or JSON) description of a molecule:
//
//	name: water
//	atoms:
//	  - {name: O}
//	  - {name: H1, type: H}
//	  - {name: H2, type: H}
//	bonds: [[0, 1], [0, 2]]
//	residues:
//	  - {name: HOH, id: 1, atoms: [0, 1, 2]}
//
// An atom without a type uses its name as type. [Document.Build] feeds the
// records into a [topology.Topology] in file order; a record the topology
// refuses turns into an error naming that record.
package molfile
