// Package asa decodes the SQLite-backed "ASA" save container: name-table
// and actor-location lookup, per-object blob decompression, and property
// decoding via the shared ark property system (spec §4.7, C7).
package asa

import (
	"database/sql"
	"strings"

	"arksave/ark"
	"arksave/memory"
	"arksave/ue"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Load opens path as a read-only SQLite container and decodes every
// object it holds (spec §4.7 steps 1-5). Table and column names are
// detected by shape rather than assumed literal, since the implementer
// note in spec §9 warns they may drift across game patches.
func Load(path string, logger logrus.FieldLogger) ([]*ark.GameObject, *ark.Context, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, nil, errors.Wrap(err, "asa: open")
	}
	defer db.Close()

	tables, err := listTables(db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "asa: list tables")
	}

	nameBlob, err := findNameTableBlob(db, tables)
	if err != nil {
		return nil, nil, errors.Wrap(err, "asa: load name table")
	}
	names := ark.NewTrailingNameTable(parseNameTableBlob(nameBlob))

	ctx := ark.NewContext(ark.FormatASA, names, logger)
	ctx.GameTime = findGameTime(db, tables)

	locations, err := loadActorLocations(db, tables)
	if err != nil {
		return nil, nil, errors.Wrap(err, "asa: load actor locations")
	}

	rows, err := loadCustomRows(db, tables)
	if err != nil {
		return nil, nil, errors.Wrap(err, "asa: load custom blobs")
	}

	objects := make([]*ark.GameObject, 0, len(rows))
	for i, row := range rows {
		ctx.ObjectIndex = i
		plain, err := decompressBlob(row.data)
		if err != nil {
			ctx.Logger.WithError(err).WithField("guid", row.guid.String()).Warn("asa: failed to decompress object blob, skipping")
			continue
		}
		r := memory.NewReader(plain)
		props, err := ark.ReadPropertyList(r, ctx)
		if err != nil {
			ctx.Logger.WithError(err).WithField("guid", row.guid.String()).Warn("asa: failed to decode object properties, skipping")
			continue
		}
		obj := &ark.GameObject{
			ID:         i,
			GUID:       row.guid,
			ClassName:  classNameFromProperties(props),
			Names:      []string{row.guid.String()},
			Properties: props,
		}
		if loc, ok := locations[row.guid]; ok {
			l := loc
			obj.Location = &l
		}
		objects = append(objects, obj)
	}

	return objects, ctx, nil
}

// findGameTime scans every table for a numeric column that looks like the
// world clock (spec §4.9 decay-timer formula needs it; the ASA schema has
// no fixed table for it, so this is a best-effort heuristic, not a
// guaranteed hit — see DESIGN.md). Returns 0 if nothing matches; decay
// timers computed from that are then the negated
// LastInAllyRangeTimeSerialized value (0 when the property is absent).
func findGameTime(db *sql.DB, tables []string) float64 {
	for _, t := range tables {
		cols, err := columnsOf(db, t)
		if err != nil {
			continue
		}
		for _, col := range cols {
			lc := strings.ToLower(col)
			if !strings.Contains(lc, "gametime") && !strings.Contains(lc, "savetime") {
				continue
			}
			var v float64
			row := db.QueryRow("SELECT " + col + " FROM " + t + " LIMIT 1")
			if err := row.Scan(&v); err != nil {
				continue
			}
			return v
		}
	}
	return 0
}

func listTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func columnsOf(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query("SELECT * FROM " + table + " LIMIT 0")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return rows.Columns()
}

// findNameTableBlob scans every table for a column whose name looks
// blob-like (see looksLikeBlobColumn) and whose first value longer than 8
// bytes parses cleanly as a run of FStrings, and returns the first match. Game
// header tables are small (one row per setting), so a full scan is cheap.
func findNameTableBlob(db *sql.DB, tables []string) ([]byte, error) {
	for _, t := range tables {
		cols, err := columnsOf(db, t)
		if err != nil {
			continue
		}
		for _, col := range cols {
			if !looksLikeBlobColumn(col) {
				continue
			}
			blob, ok := firstNonEmptyBlob(db, t, col)
			if !ok {
				continue
			}
			if names := tryParseNameTableBlob(blob); names != nil {
				return blob, nil
			}
		}
	}
	return nil, errors.New("asa: no table/column produced a parseable name table")
}

func looksLikeBlobColumn(col string) bool {
	lc := strings.ToLower(col)
	return strings.Contains(lc, "value") || strings.Contains(lc, "blob") || strings.Contains(lc, "data") || strings.Contains(lc, "name")
}

func firstNonEmptyBlob(db *sql.DB, table, col string) ([]byte, bool) {
	rows, err := db.Query("SELECT " + col + " FROM " + table)
	if err != nil {
		return nil, false
	}
	defer rows.Close()
	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			continue
		}
		if len(b) > 8 {
			return b, true
		}
	}
	return nil, false
}

// tryParseNameTableBlob returns nil if b does not decode cleanly as a
// back-to-back run of FStrings consuming the whole buffer.
func tryParseNameTableBlob(b []byte) []string {
	r := memory.NewReader(b)
	var names []string
	for r.Remaining() > 0 {
		s, err := ue.ReadFString(r)
		if err != nil {
			return nil
		}
		names = append(names, s)
	}
	return names
}

func parseNameTableBlob(b []byte) []string {
	return tryParseNameTableBlob(b)
}

// loadActorLocations reads the per-actor transform table: a GUID column
// plus a single blob column of at least 48 bytes (position f64x3 +
// rotation f64x3) (spec §4.7). Rows with a shorter blob are skipped;
// discrete per-axis float columns are not read.
func loadActorLocations(db *sql.DB, tables []string) (map[ue.FGuid]ark.LocationData, error) {
	out := make(map[ue.FGuid]ark.LocationData)
	table, guidCol, blobCol, ok := findActorTable(db, tables)
	if !ok {
		return out, nil
	}
	rows, err := db.Query("SELECT " + guidCol + ", " + blobCol + " FROM " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var guidBytes, transformBytes []byte
		if err := rows.Scan(&guidBytes, &transformBytes); err != nil {
			return nil, err
		}
		if len(guidBytes) != 16 || len(transformBytes) < 48 {
			continue
		}
		var guid ue.FGuid
		copy(guid[:], guidBytes)
		tr := memory.NewReader(transformBytes)
		vec, err := ue.ReadFVector(tr, true)
		if err != nil {
			continue
		}
		rot, err := ue.ReadFRotator(tr, true)
		if err != nil {
			continue
		}
		out[guid] = ark.LocationData{X: vec.X, Y: vec.Y, Z: vec.Z, Pitch: rot.Pitch, Yaw: rot.Yaw, Roll: rot.Roll}
	}
	return out, rows.Err()
}

func findActorTable(db *sql.DB, tables []string) (table, guidCol, blobCol string, ok bool) {
	for _, t := range tables {
		lt := strings.ToLower(t)
		if !strings.Contains(lt, "actor") {
			continue
		}
		cols, err := columnsOf(db, t)
		if err != nil {
			continue
		}
		var guid, blob string
		for _, c := range cols {
			lc := strings.ToLower(c)
			if strings.Contains(lc, "guid") || strings.Contains(lc, "id") {
				guid = c
			}
			if strings.Contains(lc, "transform") || strings.Contains(lc, "location") {
				blob = c
			}
		}
		if guid != "" && blob != "" {
			return t, guid, blob, true
		}
	}
	return "", "", "", false
}

type customRow struct {
	guid ue.FGuid
	data []byte
}

// loadCustomRows reads the per-object compressed-blob table.
func loadCustomRows(db *sql.DB, tables []string) ([]customRow, error) {
	table, guidCol, dataCol, ok := findCustomTable(db, tables)
	if !ok {
		return nil, errors.New("asa: no custom blob table found")
	}
	rows, err := db.Query("SELECT " + guidCol + ", " + dataCol + " FROM " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []customRow
	for rows.Next() {
		var guidBytes, data []byte
		if err := rows.Scan(&guidBytes, &data); err != nil {
			return nil, err
		}
		if len(guidBytes) != 16 {
			continue
		}
		var guid ue.FGuid
		copy(guid[:], guidBytes)
		out = append(out, customRow{guid: guid, data: data})
	}
	return out, rows.Err()
}

func findCustomTable(db *sql.DB, tables []string) (table, guidCol, dataCol string, ok bool) {
	for _, t := range tables {
		lt := strings.ToLower(t)
		if !strings.Contains(lt, "custom") && !strings.Contains(lt, "object") {
			continue
		}
		cols, err := columnsOf(db, t)
		if err != nil {
			continue
		}
		var guid, data string
		for _, c := range cols {
			lc := strings.ToLower(c)
			if strings.Contains(lc, "guid") {
				guid = c
			}
			if strings.Contains(lc, "data") || strings.Contains(lc, "value") || strings.Contains(lc, "custom") {
				if lc != guid {
					data = c
				}
			}
		}
		if guid != "" && data != "" {
			return t, guid, data, true
		}
	}
	return "", "", "", false
}

// classNameFromProperties falls back to a "ClassName"-like property for
// ASA objects, which (unlike ASE) do not carry a component-path chain in
// the row shape itself.
func classNameFromProperties(props []ark.Property) string {
	for _, p := range props {
		if p.Name.Name == "ClassName" || p.Name.Name == "BlueprintClass" {
			if s, ok := p.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}
