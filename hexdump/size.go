package hexdump

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dustin/go-humanize"
)

var SIZE_PATTERN = regexp.MustCompile(`^\s*([0-9.]+)([KMGTP]B*){0,1}\s*$`)

const KB = int64(1024)
const MB = KB * 1024
const GB = MB * 1024
const TB = GB * 1024
const PB = TB * 1024

// SizeParse converts an offset or length parameter like "64", "4K" or
// "1.5M" into a byte count.
func SizeParse(param string) (int64, error) {
	var multiplier int64 = 1

	match := SIZE_PATTERN.FindStringSubmatch(param)
	if len(match) != 3 {
		return 0, Fatalf("failed parsing size parameter: '%s'", param)
	}
	number := match[1]
	suffix := match[2]
	switch suffix {
	case "":
		multiplier = 1
	case "K", "KB":
		multiplier = KB
	case "M", "MB":
		multiplier = MB
	case "G", "GB":
		multiplier = GB
	case "T", "TB":
		multiplier = TB
	case "P", "PB":
		multiplier = PB
	default:
		return 0, Fatalf("unexpected suffix in size parameter: '%s'", param)
	}
	fsize, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, Fatal(err)
	}
	size := int64(fsize * float64(multiplier))
	return size, nil
}

func FormatSize(size int64) string {
	if ViperGetBool("no_humanize") {
		return fmt.Sprintf("%d", size)
	}
	return humanize.IBytes(uint64(size))
}
