package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file describing one
// impedance-match invocation. Units are MKS throughout.
type MatchParameters struct {
	Title          string   `yaml:"Title"`
	ImpactVelocity float64  `yaml:"ImpactVelocity"` // m/s
	Materials      []string `yaml:"Materials"`      // impactor first, 2-4 entries
	GridPoints     int      `yaml:"GridPoints"`
	SpanFactor     float64  `yaml:"SpanFactor"`
	UseMGModel     bool     `yaml:"UseMGModel"`
	MaterialsFile  string   `yaml:"MaterialsFile"`
}

func (ip *MatchParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *MatchParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.2f\t\t= ImpactVelocity (m/s)\n", ip.ImpactVelocity)
	for i, name := range ip.Materials {
		fmt.Printf("[%s]\t\t\t= Material %d\n", name, i+1)
	}
	fmt.Printf("[%d]\t\t\t= GridPoints\n", ip.GridPoints)
	fmt.Printf("%8.2f\t\t= SpanFactor\n", ip.SpanFactor)
	fmt.Printf("[%v]\t\t\t= UseMGModel\n", ip.UseMGModel)
}
