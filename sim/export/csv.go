// Package export consumes a simulation's recorded history and persists it.
// The engine's only obligation is the record stream; everything about the
// serialized shape lives here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bullwhip-sim/bullwhip-sim/sim"
)

// csvHeader fixes the exported field order. Consumers depend on this order
// being stable across releases.
var csvHeader = []string{
	"week",
	"role",
	"inventory",
	"backlog",
	"order_placed",
	"incoming_demand",
	"shipment_sent",
	"shipment_received",
	"cost",
}

// WriteCSV writes the history to w as CSV, one row per agent per week, in the
// order the engine recorded them.
func WriteCSV(w io.Writer, records []sim.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Week),
			rec.Role.String(),
			strconv.Itoa(rec.Inventory),
			strconv.Itoa(rec.Backlog),
			strconv.Itoa(rec.OrderPlaced),
			strconv.Itoa(rec.IncomingDemand),
			strconv.Itoa(rec.ShipmentSent),
			strconv.Itoa(rec.ShipmentReceived),
			strconv.FormatFloat(rec.Cost, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row (week %d, %s): %w", rec.Week, rec.Role, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the history to a file at path, creating or truncating
// it.
func WriteCSVFile(path string, records []sim.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return err
	}
	return f.Close()
}
