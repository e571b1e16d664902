// Package heredity infers, for each member of a family, the
// probability of carrying 0, 1 or 2 copies of a gene and of exhibiting
// the trait it causes.
//
// What:
//
//   - LoadFamily reads a CSV of name, mother, father, trait rows;
//     parents are either both listed or both absent, and trait is 1,
//     0, or blank for unknown.
//   - Probs holds the population genotype distribution, the
//     trait-given-genotype table, and the mutation rate; defaults
//     match the course hand-out and can be overridden from YAML.
//   - Compute enumerates every assignment of genotypes and traits
//     consistent with the observed evidence, accumulates each joint
//     probability, and normalizes into per-person distributions.
//
// A child's genotype is derived from the parents' genotypes with the
// full mutation-aware inheritance table: each parent passes the gene
// or not according to their genotype, and every passed allele may
// mutate with probability Mutation.
//
// Complexity: O(8^n) joint evaluations over n family members — the
// course families have three.
//
// Errors:
//
//   - ErrBadFamily: a row is malformed or references an unknown parent.
//   - ErrBadProbs: a probability table does not describe distributions.
package heredity
