package entities

import (
	"fmt"
	"strings"
)

// PartnershipTechnique selects the availability model used for interline
// travel solutions
type PartnershipTechnique int

const (
	TechniqueNone PartnershipTechnique = iota
	TechniqueRAEDA
	TechniqueRAEYP
	TechniqueIBPDA
	TechniqueIBPYP
	TechniqueIBPYPU
	TechniqueRMC
	TechniqueARMC
)

var techniqueNames = []string{"NONE", "RAE_DA", "RAE_YP", "IBP_DA", "IBP_YP", "IBP_YP_U", "RMC", "A_RMC"}

// String method for PartnershipTechnique enum
func (t PartnershipTechnique) String() string {
	if t < 0 || int(t) >= len(techniqueNames) {
		return "Unknown"
	}
	return techniqueNames[t]
}

// IsValid reports whether the value is one of the known techniques
func (t PartnershipTechnique) IsValid() bool {
	return t >= TechniqueNone && t <= TechniqueARMC
}

// ParsePartnershipTechnique converts a technique name such as "IBP_YP"
func ParsePartnershipTechnique(name string) (PartnershipTechnique, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, t := range AllPartnershipTechniques() {
		if t.String() == normalized {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown partnership technique %q (expected one of %s)",
		name, strings.Join(techniqueNames, ", "))
}

// AllPartnershipTechniques lists every technique in declaration order
func AllPartnershipTechniques() []PartnershipTechnique {
	all := make([]PartnershipTechnique, len(techniqueNames))
	for i := range techniqueNames {
		all[i] = PartnershipTechnique(i)
	}
	return all
}
