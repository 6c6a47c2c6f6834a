/*
 * shake.go, part of proteinshake.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package shake is a dataset-ingestion library for structural biology.
//It downloads raw protein/ligand archives from public repositories
//(Zenodo, RCSB), extracts and parses them into a common in-memory
//protein representation, optionally attaches per-protein metadata
//(binding affinity, resolution, ligand SMILES) from CSV tables, and
//exposes the result through light wrappers for downstream tensor
//consumption (sequence tokenization, indexing).
//
//The root package holds the data model: the Protein type and its
//residue/atom tables, the amino-acid lookup tables, and the residue
//Alphabet used for tokenization. The actual pipelines live in the
//subpackages: dataset (download/extract/discover/parse/join), store
//(processed-protein persistence), repr (sequence representation) and
//stats (dataset summaries).
package shake

//Errors

//Error is the interface for errors that all packages in this library implement. The Decorate
//method allows adding information to the error as it is passed up, without changing its type
//or wrapping it around something else. Each Decorate call should add the caller's name, plus,
//optionally, any relevant extra info in the format "FunctionName: extra info". If passed an
//empty string, Decorate just returns the current decoration slice without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}
