package organizer

import (
	"fmt"
	"path/filepath"
	"strings"

	"filesort/internal/config"
	"filesort/internal/fileutil"
)

const maxRenameAttempts = 10000

// destinationPlanner resolves destination paths for one pass. Paths handed out
// earlier in the pass count as occupied so dry runs report the same names a
// real run would produce.
type destinationPlanner struct {
	policy  string
	claimed map[string]struct{}
}

func newDestinationPlanner(policy string) *destinationPlanner {
	if policy == "" {
		policy = config.ConflictRename
	}
	return &destinationPlanner{policy: policy, claimed: make(map[string]struct{})}
}

// resolve returns the path the file should move to. ok is false when the skip
// policy applies and the file must stay where it is.
func (p *destinationPlanner) resolve(folder, name string) (target string, renamed bool, ok bool, err error) {
	target = filepath.Join(folder, name)
	taken, err := p.occupied(target)
	if err != nil {
		return "", false, false, err
	}
	if !taken {
		p.claim(target)
		return target, false, true, nil
	}

	switch p.policy {
	case config.ConflictSkip:
		return "", false, false, nil
	case config.ConflictOverwrite:
		p.claim(target)
		return target, false, true, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem, ext = name, ""
	}
	for attempt := 1; attempt <= maxRenameAttempts; attempt++ {
		candidate := filepath.Join(folder, fmt.Sprintf("%s (%d)%s", stem, attempt, ext))
		taken, err := p.occupied(candidate)
		if err != nil {
			return "", false, false, err
		}
		if !taken {
			p.claim(candidate)
			return candidate, true, true, nil
		}
	}
	return "", false, false, fmt.Errorf("exhausted rename slots for %s in %s", name, folder)
}

func (p *destinationPlanner) occupied(path string) (bool, error) {
	if _, ok := p.claimed[path]; ok {
		return true, nil
	}
	return fileutil.Exists(path)
}

func (p *destinationPlanner) claim(path string) {
	p.claimed[path] = struct{}{}
}
