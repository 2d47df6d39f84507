/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"

	"github.com/pclkit/pclkit/common"
)

// requiredTables are the tables a soft font cannot be built without. maxp holds the glyph count
// needed to read loca.
var requiredTables = []string{"head", "hhea", "maxp", "loca", "glyf"}

// font is a data model for truetype fonts with basic access methods.
type font struct {
	data []byte // the complete font file.

	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	hmtx *hmtxTable
	loca *locaTable
	cmap *cmapTable
	name *nameTable
	os2  *os2Table
	pclt *pcltTable
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

func parseFont(data []byte, r *byteReader) (*font, error) {
	f := &font{data: data}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	for _, name := range requiredTables {
		if !f.trec.HasTable(name) {
			common.Log.Debug("Required table %s missing", name)
			return nil, fmt.Errorf("%w: %s", ErrMissingTable, name)
		}
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, fmt.Errorf("maxp: %w", err)
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, fmt.Errorf("hhea: %w", err)
	}

	f.hmtx, err = f.parseHmtx(r)
	if err != nil {
		return nil, fmt.Errorf("hmtx: %w", err)
	}

	f.loca, err = f.parseLoca(r)
	if err != nil {
		return nil, fmt.Errorf("loca: %w", err)
	}

	f.cmap, err = f.parseCmap(r)
	if err != nil {
		return nil, fmt.Errorf("cmap: %w", err)
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	f.os2, err = f.parseOS2Table(r)
	if err != nil {
		return nil, fmt.Errorf("OS/2: %w", err)
	}

	f.pclt, err = f.parsePCLT(r)
	if err != nil {
		return nil, fmt.Errorf("PCLT: %w", err)
	}

	common.Log.Trace("Parsed font with %d tables, %d glyphs", f.numTables(), f.maxp.numGlyphs)
	return f, nil
}
