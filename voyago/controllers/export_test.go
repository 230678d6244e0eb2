package controllers

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"voyago/voyago/types"
	"voyago/voyago/utils/logging"
)

func TestExportMissingFields(t *testing.T) {
	logging.InitNopLogger()
	c := NewExportController()

	for _, req := range []types.ExportRequest{
		{},
		{Country: "Italy"},
		{Days: []types.ItineraryDay{{Day: 1, City: "Rome"}}},
	} {
		data, status, body := c.Export(context.Background(), req)
		if status != http.StatusBadRequest || data != nil {
			t.Errorf("%+v: expected a 400 with no PDF bytes, got %d", req, status)
		}
		if env := body.(types.Envelope); env.Error != "Country and itinerary days are required" {
			t.Errorf("%+v: unexpected error %q", req, env.Error)
		}
	}
}

func TestExportRendersPDF(t *testing.T) {
	logging.InitNopLogger()
	c := NewExportController()

	data, status, body := c.Export(context.Background(), types.ExportRequest{
		Country: "Italy",
		Days: []types.ItineraryDay{
			{Day: 1, City: "Rome", Activities: []string{"Colosseum tour"}},
			{Day: 2, City: "Florence", Activities: []string{"Uffizi Gallery"}},
		},
	})
	if status != http.StatusOK || body != nil {
		t.Fatalf("expected a clean 200, got status %d body %#v", status, body)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF")
	}
}
