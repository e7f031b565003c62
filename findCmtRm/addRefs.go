package main

import "github.com/nickwells/param.mod/v6/param"

// addRefs will add the references to the standard help message
func addRefs(ps *param.PSet) error {
	ps.AddReference(`findCmpRm`,
		"The findCmpRm program finds files which have been kept as"+
			" copies of an original and helps you to compare them"+
			" and tidy up afterwards. It can be used in the same way"+
			" to review the copies in the backup directory.")

	ps.AddReference(`gosh`,
		"The gosh program has a feature which simplifies editing files in"+
			" place. Copies of the files prior to editing are kept, as"+
			" this program keeps copies of the files it changes.")

	return nil
}
