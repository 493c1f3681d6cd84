package clkmgr

import "github.com/clktmr/socfpga/debug"

// VCOCalib returns the VCOCALIB register value for a PLL programmed with the
// given PLLM and PLLGLOB values.
func VCOCalib(pllm, pllglob uint32) uint32 {
	mdiv := field(pllm, pllmMdivMask, 0)
	arefdiv := field(pllglob, pllGlobArefDivMask, pllGlobArefDivShift)
	drefdiv := field(pllglob, pllGlobDrefDivMask, pllGlobDrefDivShift)
	refdiv := field(pllglob, pllGlobRefDivMask, pllGlobRefDivShift)

	mscnt := uint32(1)
	if d := mdiv << drefdiv; d != 0 {
		mscnt = max(vcoCalibMscntConst/d, 1)
	}
	if refdiv == 0 {
		refdiv = 1
	}
	hscnt := (mdiv*mscnt<<drefdiv)/refdiv - vcoCalibHscntConst

	calib := hscnt&vcoCalibHscntMask | (mscnt<<vcoCalibMscntShift)&vcoCalibMscntMask

	debug.Printf("mdiv %d arefdiv %d drefdiv %d refdiv %d\n", mdiv, arefdiv, drefdiv, refdiv)
	debug.Printf("mscnt %d hscnt %d vcocalib %#08x\n", mscnt, hscnt, calib)

	return calib
}
