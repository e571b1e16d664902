package heredity

// Distribution is the inferred posterior for one person.
type Distribution struct {
	// Gene[g] is the probability of carrying g copies.
	Gene [3]float64
	// Trait maps exhibiting the trait to its probability.
	Trait map[bool]float64
}

// assignment is one enumerated world: copies of the gene per person
// and who exhibits the trait.
type assignment struct {
	genes map[string]int
	trait map[string]bool
}

// Compute enumerates all assignments of genotype and trait consistent
// with the family's observed evidence, accumulates the joint
// probability of each, and normalizes into per-person distributions.
func Compute(fam Family, probs Probs) (map[string]*Distribution, error) {
	if err := probs.Validate(); err != nil {
		return nil, err
	}

	names := fam.Names()
	out := make(map[string]*Distribution, len(names))
	for _, n := range names {
		out[n] = &Distribution{Trait: map[bool]float64{}}
	}

	// Enumerate trait sets, skipping those contradicting the evidence,
	// then genotype assignments: who has one copy, and of the rest,
	// who has two.
	forEachSubset(names, func(haveTrait map[string]bool) {
		for _, n := range names {
			if obs := fam[n].Trait; obs != nil && *obs != haveTrait[n] {
				return
			}
		}
		forEachSubset(names, func(oneGene map[string]bool) {
			rest := exclude(names, oneGene)
			forEachSubset(rest, func(twoGenes map[string]bool) {
				a := assignment{genes: make(map[string]int, len(names)), trait: haveTrait}
				for _, n := range names {
					switch {
					case oneGene[n]:
						a.genes[n] = 1
					case twoGenes[n]:
						a.genes[n] = 2
					default:
						a.genes[n] = 0
					}
				}
				p := jointProbability(fam, probs, a)
				for _, n := range names {
					out[n].Gene[a.genes[n]] += p
					out[n].Trait[a.trait[n]] += p
				}
			})
		})
	})

	normalize(out)

	return out, nil
}

// jointProbability returns the probability that every person has
// exactly the genotype and trait the assignment gives them.
func jointProbability(fam Family, probs Probs, a assignment) float64 {
	p := 1.0
	for name, person := range fam {
		g := a.genes[name]
		if person.Mother == "" {
			// no listed parents: unconditional genotype distribution
			p *= probs.Gene[g]
		} else {
			p *= inheritance(probs, g, a.genes[person.Mother], a.genes[person.Father])
		}
		p *= probs.Trait[g][a.trait[name]]
	}

	return p
}

// inheritance returns P(child has g copies | parents' genotypes),
// accounting for mutation of each transmitted allele. passProb gives
// the chance a parent transmits the gene: a homozygous carrier passes
// it unless it mutates away, a non-carrier only via mutation, and a
// heterozygous parent passes either allele equally.
func inheritance(probs Probs, g, mother, father int) float64 {
	pm := passProb(probs, mother)
	pf := passProb(probs, father)

	switch g {
	case 2:
		return pm * pf
	case 1:
		return pm*(1-pf) + (1-pm)*pf
	default:
		return (1 - pm) * (1 - pf)
	}
}

// passProb is the probability a parent with the given genotype
// transmits the gene to the child.
func passProb(probs Probs, genotype int) float64 {
	switch genotype {
	case 2:
		return 1 - probs.Mutation
	case 1:
		return 0.5
	default:
		return probs.Mutation
	}
}

// normalize rescales each person's distributions to sum to 1.
func normalize(dists map[string]*Distribution) {
	for _, d := range dists {
		geneSum := d.Gene[0] + d.Gene[1] + d.Gene[2]
		if geneSum > 0 {
			for g := range d.Gene {
				d.Gene[g] /= geneSum
			}
		}
		traitSum := d.Trait[true] + d.Trait[false]
		if traitSum > 0 {
			d.Trait[true] /= traitSum
			d.Trait[false] /= traitSum
		}
	}
}

// forEachSubset calls fn with every subset of names, presented as a
// membership map. Order of subsets is unspecified.
func forEachSubset(names []string, fn func(map[string]bool)) {
	n := len(names)
	for mask := 0; mask < 1<<n; mask++ {
		subset := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset[names[i]] = true
			}
		}
		fn(subset)
	}
}

// exclude returns the names not in the membership map, keeping order.
func exclude(names []string, in map[string]bool) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !in[n] {
			out = append(out, n)
		}
	}

	return out
}
