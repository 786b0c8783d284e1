// Package manybody turns atomic structures into fixed-length numeric
// feature vectors — descriptors — ready to feed statistical models.
//
// 🚀 What is manybody?
//
//	A pure-Go library for geometric structure descriptors:
//		• Many-Body Tensor Representation (MBTR) up to k=3: element counts,
//		  inverse distances and angle cosines, Gaussian-broadened on a grid
//		• Periodic-image expansion bounded by weight decay
//		• Sorted & zero-padded Coulomb and sine matrices for finite and
//		  periodic systems
//		• Feature-vector post-processing: L2 normalization, cosine and
//		  Euclidean distances between descriptors
//
// ✨ Why choose manybody?
//
//   - Deterministic output layout – a fixed combination-enumeration contract,
//     so the same configuration always yields the same feature positions
//   - Validate once, describe many – configuration errors surface at
//     construction, Describe stays pure and safe for concurrent use
//   - Pure Go – no cgo, no Python bridge; the one third-party runtime
//     dependency is viant/vec for float32 vector distance kernels
//
// Everything is organized under focused subpackages:
//
//	atoms/     — immutable structure container: positions, numbers, cell, pbc
//	grid/      — discretization grids with analytic per-order defaults
//	weight/    — unity & exponential weighting functions with decay cutoffs
//	aggregate/ — per-order geometry/weight aggregation into combination maps
//	broaden/   — closed-form Gaussian broadening onto a grid (CDF trick)
//	mbtr/      — the many-body tensor descriptor: expansion → aggregation →
//	             broadening → assembly → one ordered vector
//	pairmat/   — sorted, zero-padded Coulomb & sine interaction matrices
//	featvec/   — float32 descriptor vector helpers (normalize, compare)
//
// Quick sketch of the MBTR pipeline:
//
//	Structure ─→ expand (periodic, k>1) ─→ aggregate (k-tuples)
//	          ─→ broaden (Gaussian CDF)  ─→ assemble ─→ FeatureVector
//
// Dive into examples/ for end-to-end walkthroughs on finite and periodic
// systems, and each package's doc.go for contracts and complexity notes.
//
//	go get github.com/katalvlaran/manybody
package manybody
