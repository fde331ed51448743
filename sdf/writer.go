package sdf

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
)

// Write encodes r as an ASCII surface data file, one profile per data line.
// Missing samples are written as BAD and non-zero offsets go to the trailer.
func Write(w io.Writer, r *Raster) error {
	bw := bufio.NewWriter(w)
	h := r.Header

	fmt.Fprintln(bw, Signature)
	kv := func(key string, value any) { fmt.Fprintf(bw, "%-12s= %v\n", key, value) }
	kv("ManufacID", h.ManufacID)
	kv("CreateDate", h.CreateDate)
	kv("ModDate", h.ModDate)
	kv("NumPoints", h.NumPoints)
	kv("NumProfiles", h.NumProfiles)
	kv("Xscale", formatFloat(h.XScale))
	kv("Yscale", formatFloat(h.YScale))
	kv("Zscale", formatFloat(h.ZScale))
	kv("Zresolution", formatFloat(h.ZResolution))
	kv("Compression", h.Compression)
	kv("DataType", h.DataType)
	kv("CheckType", h.CheckType)
	for _, k := range slices.Sorted(maps.Keys(h.Extra)) {
		kv(k, h.Extra[k])
	}
	fmt.Fprintln(bw, separator)

	for j := 0; j < h.NumProfiles; j++ {
		row := r.data[j*h.NumPoints : (j+1)*h.NumPoints]
		for i, v := range row {
			if i > 0 {
				bw.WriteByte(' ')
			}
			if math.IsNaN(v) {
				bw.WriteString("BAD")
				continue
			}
			bw.WriteString(formatFloat(v))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, separator)

	if r.xOffset != 0 {
		kv("XOffset", formatFloat(r.xOffset))
	}
	if r.yOffset != 0 {
		kv("YOffset", formatFloat(r.yOffset))
	}
	if r.zOffset != 0 {
		kv("ZOffset", formatFloat(r.zOffset))
	}
	for _, k := range slices.Sorted(maps.Keys(r.Trailer)) {
		kv(k, r.Trailer[k])
	}
	fmt.Fprintln(bw, separator)

	return bw.Flush()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
