package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// energyFlag is a pflag.Value restricted to the energy levels.
type energyFlag domain.EnergyLevel

var _ pflag.Value = (*energyFlag)(nil)

func (e *energyFlag) String() string { return string(*e) }
func (e *energyFlag) Type() string   { return "high|medium|low" }

func (e *energyFlag) Set(s string) error {
	v := domain.EnergyLevel(strings.ToLower(strings.TrimSpace(s)))
	if !domain.ValidEnergyLevels[v] {
		return fmt.Errorf("must be one of high, medium, low")
	}
	*e = energyFlag(v)
	return nil
}

// detailFlag is a pflag.Value restricted to the detail modes.
type detailFlag domain.DetailMode

var _ pflag.Value = (*detailFlag)(nil)

func (d *detailFlag) String() string { return string(*d) }
func (d *detailFlag) Type() string   { return "short|long" }

func (d *detailFlag) Set(s string) error {
	v := domain.DetailMode(strings.ToLower(strings.TrimSpace(s)))
	if !domain.ValidDetailModes[v] {
		return fmt.Errorf("must be one of short, long")
	}
	*d = detailFlag(v)
	return nil
}

// requestOptions are the flags shared by prompt and analyze.
type requestOptions struct {
	energy   energyFlag
	detail   detailFlag
	advisors []string
	custom   []string
	rest     bool
	date     string
}

func newRequestOptions() *requestOptions {
	return &requestOptions{
		energy: energyFlag(domain.DefaultEnergy),
		detail: detailFlag(domain.DefaultDetail),
	}
}

func (o *requestOptions) register(fs *pflag.FlagSet) {
	fs.Var(&o.energy, "energy", "Today's energy level")
	fs.Var(&o.detail, "detail", "Response verbosity")
	fs.StringSliceVar(&o.advisors, "advisor", nil, "Advisor ids listed by 'dayplan advisors' (max 3, default em,wb,sn)")
	fs.StringArrayVar(&o.custom, "custom-advisor", nil, "Free-text advisor name (repeatable)")
	fs.BoolVar(&o.rest, "rest", false, "Rest-day mode: plan for recovery")
	fs.StringVar(&o.date, "date", "", "Day key YYYY-MM-DD (default today)")
}
