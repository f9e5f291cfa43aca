// Package export writes report tables to an xlsx workbook and applies the
// response deadline highlighting.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// rangeRef converts 1-based bounds to Excel range notation, e.g. "A1:D10".
func rangeRef(c1, r1, c2, r2 int) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(c1, r1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(c2, r2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}
