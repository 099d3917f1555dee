package wordnet

import "github.com/lexgraph/mwn/errors"

// Closure walks edges of one type breadth-first and returns every synset
// reachable within depth steps, nearest first. The starting synset is never
// part of the result, even when a cycle leads back to it. A negative depth
// removes the bound.
func (s *Synset) Closure(relType string, depth int) ([]*Synset, error) {
	if _, err := RelationTypeName(s.POS(), relType); err != nil {
		return nil, err
	}

	seen := map[string]bool{s.id: true}
	var found []*Synset
	frontier := []*Synset{s}

	for level := 0; len(frontier) > 0 && (depth < 0 || level < depth); level++ {
		var next []*Synset
		for _, current := range frontier {
			targets, err := current.relatedOfType(relType)
			if err != nil {
				return nil, err
			}
			for _, target := range targets {
				if seen[target.ID()] {
					continue
				}
				seen[target.ID()] = true
				found = append(found, target)
				next = append(next, target)
			}
		}
		frontier = next
	}
	return found, nil
}

// relatedOfType resolves the targets of the synset's edges of one type,
// skipping edges whose target record is missing from the data.
func (s *Synset) relatedOfType(typ string) ([]*Synset, error) {
	relations, err := s.RelationsOfType(typ)
	if err != nil {
		return nil, err
	}
	targets := make([]*Synset, 0, len(relations))
	for _, r := range relations {
		target, err := r.Target()
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

// MaxDepth returns the length of the longest hypernym chain above the
// synset. A synset with no hypernyms has depth 0. Cyclic data does not
// recurse forever: a chain that revisits one of its own ancestors
// contributes 0 at the point of revisit.
func (s *Synset) MaxDepth() (int, error) {
	return s.maxDepth(map[string]bool{})
}

func (s *Synset) maxDepth(path map[string]bool) (int, error) {
	if path[s.id] {
		return 0, nil
	}
	path[s.id] = true
	defer delete(path, s.id)

	parents, err := s.hypernyms()
	if err != nil {
		return 0, err
	}
	deepest := 0
	for _, parent := range parents {
		d, err := parent.maxDepth(path)
		if err != nil {
			return 0, err
		}
		if d+1 > deepest {
			deepest = d + 1
		}
	}
	return deepest, nil
}

// MinDepth returns the length of the shortest hypernym chain above the
// synset, with the same cycle handling as MaxDepth.
func (s *Synset) MinDepth() (int, error) {
	return s.minDepth(map[string]bool{})
}

func (s *Synset) minDepth(path map[string]bool) (int, error) {
	if path[s.id] {
		return 0, nil
	}
	path[s.id] = true
	defer delete(path, s.id)

	parents, err := s.hypernyms()
	if err != nil {
		return 0, err
	}
	shallowest := 0
	for i, parent := range parents {
		d, err := parent.minDepth(path)
		if err != nil {
			return 0, err
		}
		if i == 0 || d+1 < shallowest {
			shallowest = d + 1
		}
	}
	return shallowest, nil
}

// Roots returns the top synsets reachable from this one along hypernym
// edges. A synset with no hypernyms is its own single root.
func (s *Synset) Roots() ([]*Synset, error) {
	seen := map[string]bool{s.id: true}
	var roots []*Synset
	frontier := []*Synset{s}

	for len(frontier) > 0 {
		var next []*Synset
		for _, current := range frontier {
			parents, err := current.hypernyms()
			if err != nil {
				return nil, err
			}
			if len(parents) == 0 {
				roots = append(roots, current)
				continue
			}
			for _, parent := range parents {
				if seen[parent.ID()] {
					continue
				}
				seen[parent.ID()] = true
				next = append(next, parent)
			}
		}
		frontier = next
	}
	return roots, nil
}

// PathsToRoot returns every simple hypernym path from a root down to this
// synset. Each path starts at a root and ends with the synset itself; a
// synset with no hypernyms yields the single path containing only itself.
func (s *Synset) PathsToRoot() ([][]*Synset, error) {
	return s.pathsToRoot(map[string]bool{})
}

func (s *Synset) pathsToRoot(path map[string]bool) ([][]*Synset, error) {
	path[s.id] = true
	defer delete(path, s.id)

	parents, err := s.hypernyms()
	if err != nil {
		return nil, err
	}

	var paths [][]*Synset
	for _, parent := range parents {
		if path[parent.ID()] {
			continue
		}
		above, err := parent.pathsToRoot(path)
		if err != nil {
			return nil, err
		}
		for _, p := range above {
			extended := make([]*Synset, len(p), len(p)+1)
			copy(extended, p)
			paths = append(paths, append(extended, s))
		}
	}
	if len(paths) == 0 {
		paths = append(paths, []*Synset{s})
	}
	return paths, nil
}
