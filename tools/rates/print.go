package rates

import (
	"io"

	"github.com/clktmr/socfpga/hps/clkmgr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Print writes a table with the VCO frequencies and the rate of every clock
// known to mgr.
func Print(w io.Writer, mgr *clkmgr.Manager) error {
	p := message.NewPrinter(language.English)

	vcos := []struct {
		name string
		pll  clkmgr.PLL
	}{
		{"main_vco", clkmgr.MainPLL},
		{"per_vco", clkmgr.PerPLL},
	}
	for _, v := range vcos {
		if _, err := p.Fprintf(w, "%-12s %17d Hz\n", v.name, mgr.VCO(v.pll)); err != nil {
			return err
		}
	}

	for c := range clkmgr.ClockLast {
		hz, err := mgr.Rate(c)
		if err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "%-12s %17d Hz\n", c, hz); err != nil {
			return err
		}
	}
	return nil
}
