package approval

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Policy maps role names to authority tiers.
type Policy struct {
	roles  map[string]int
	levels map[int]string
}

type policyFile struct {
	Levels map[int]string `yaml:"levels"`
	Roles  map[string]int `yaml:"roles"`
}

// DefaultPolicy is used when no role table is configured.
func DefaultPolicy() *Policy {
	return &Policy{
		roles: map[string]int{
			"Admin":            LevelAdmin,
			"HR Manager":       LevelHRManager,
			"HR Employee":      LevelHREmployee,
			"IT Manager":       LevelStandard,
			"Sales Manager":    LevelStandard,
			"Finance Manager":  LevelStandard,
			"BOD Assistant":    LevelStandard,
			"IT Employee":      LevelStandard,
			"Sales Employee":   LevelStandard,
			"Finance Employee": LevelStandard,
		},
		levels: map[int]string{
			LevelAdmin:      "Admin",
			LevelHRManager:  "HR Manager",
			LevelHREmployee: "HR Employee",
			LevelStandard:   "Standard",
		},
	}
}

// LoadPolicy reads a YAML role table. Levels must be between 0 and 4.
func LoadPolicy(path string) (*Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role policy: %w", err)
	}
	return ParsePolicy(raw)
}

func ParsePolicy(raw []byte) (*Policy, error) {
	var f policyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse role policy: %w", err)
	}
	if len(f.Roles) == 0 {
		return nil, fmt.Errorf("role policy has no roles")
	}
	for role, level := range f.Roles {
		if level < LevelNone || level > LevelAdmin {
			return nil, fmt.Errorf("role %q has level %d outside 0..%d", role, level, LevelAdmin)
		}
	}

	p := DefaultPolicy()
	p.roles = f.Roles
	for level, name := range f.Levels {
		p.levels[level] = name
	}
	return p, nil
}

// LevelOf returns the highest tier among roles. Unknown roles count as 0.
func (p *Policy) LevelOf(roles []string) int {
	level := LevelNone
	for _, r := range roles {
		if l, ok := p.roles[r]; ok && l > level {
			level = l
		}
	}
	return level
}

func (p *Policy) LevelName(level int) string {
	if name, ok := p.levels[level]; ok {
		return name
	}
	return "None"
}

// RolesAtLeast lists configured roles whose tier is >= level, sorted.
func (p *Policy) RolesAtLeast(level int) []string {
	var out []string
	for role, l := range p.roles {
		if l >= level {
			out = append(out, role)
		}
	}
	sort.Strings(out)
	return out
}

// RolesAt lists configured roles sitting exactly on level, sorted.
func (p *Policy) RolesAt(level int) []string {
	var out []string
	for role, l := range p.roles {
		if l == level {
			out = append(out, role)
		}
	}
	sort.Strings(out)
	return out
}

// CanApprove applies Decide to role lists.
func (p *Policy) CanApprove(approverRoles []string, approverID, subjectID string, subjectRoles []string) Decision {
	return Decide(p.LevelOf(approverRoles), p.LevelOf(subjectRoles), approverID == subjectID)
}
