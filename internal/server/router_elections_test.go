package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/betterballot/ballot-api/internal/districts"
	"github.com/betterballot/ballot-api/internal/elections"
	"github.com/gin-gonic/gin"
)

func TestElectionCRUDOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stack := newTestStack(t, nil)

	recorder := stack.do(t, http.MethodPost, "/api/elections", "", elections.Input{
		Office:   "Mayor",
		District: "Citywide",
		Zipcodes: []string{"94704", "94707"},
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}
	var created struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, recorder, &created)
	if created.ID <= 0 || created.Message != "Election created successfully" {
		t.Fatalf("unexpected create payload %+v", created)
	}

	recorder = stack.do(t, http.MethodGet, "/api/elections", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	var listed []elections.Summary
	decodeBody(t, recorder, &listed)
	if len(listed) != 1 || listed[0].Office != "Mayor" {
		t.Fatalf("unexpected election list %+v", listed)
	}
	if len(listed[0].Zipcodes) != 2 {
		t.Fatalf("unexpected zipcodes %v", listed[0].Zipcodes)
	}

	path := fmt.Sprintf("/api/elections/%d", created.ID)
	recorder = stack.do(t, http.MethodPut, path, "", elections.Input{
		Office:      "Mayor",
		Description: "Berkeley mayoral race",
		District:    "Citywide",
		Zipcodes:    []string{"94708"},
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = stack.do(t, http.MethodGet, "/api/elections", "", nil)
	decodeBody(t, recorder, &listed)
	if len(listed) != 1 || listed[0].Description != "Berkeley mayoral race" {
		t.Fatalf("unexpected updated list %+v", listed)
	}
	if len(listed[0].Zipcodes) != 1 || listed[0].Zipcodes[0] != "94708" {
		t.Fatalf("unexpected updated zipcodes %v", listed[0].Zipcodes)
	}

	recorder = stack.do(t, http.MethodDelete, path, "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	recorder = stack.do(t, http.MethodGet, "/api/elections", "", nil)
	decodeBody(t, recorder, &listed)
	if len(listed) != 0 {
		t.Fatalf("expected empty election list, got %+v", listed)
	}
}

func TestCreateElectionValidatesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stack := newTestStack(t, nil)

	recorder := stack.do(t, http.MethodPost, "/api/elections", "", elections.Input{District: "Citywide"})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	var response struct {
		Error string `json:"error"`
	}
	decodeBody(t, recorder, &response)
	if response.Error != "Office and district are required" {
		t.Fatalf("unexpected error %q", response.Error)
	}
}

func TestUpdateElectionReturnsNotFoundForMissingRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stack := newTestStack(t, nil)

	recorder := stack.do(t, http.MethodPut, "/api/elections/4242", "", elections.Input{
		Office:   "Mayor",
		District: "Citywide",
	})
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	var response struct {
		Error string `json:"error"`
	}
	decodeBody(t, recorder, &response)
	if response.Error != "Election not found" {
		t.Fatalf("unexpected error %q", response.Error)
	}
}

func TestElectionsByZipcodeFiltersContests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stack := newTestStack(t, nil)

	for _, input := range []elections.Input{
		{Office: "Mayor", District: "Citywide", Zipcodes: []string{"94704", "94707"}},
		{Office: "City Council District 8", District: "District 8", Zipcodes: []string{"94705"}},
	} {
		recorder := stack.do(t, http.MethodPost, "/api/elections", "", input)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
		}
	}

	recorder := stack.do(t, http.MethodGet, "/api/elections/zipcode/94705", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	var listed []elections.Summary
	decodeBody(t, recorder, &listed)
	if len(listed) != 1 || listed[0].Office != "City Council District 8" {
		t.Fatalf("unexpected filtered list %+v", listed)
	}
}

func TestDistrictEndpointsServeCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stack := newTestStack(t, nil)

	recorder := stack.do(t, http.MethodGet, "/api/districts", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	var all []districts.District
	decodeBody(t, recorder, &all)
	if len(all) != 8 {
		t.Fatalf("expected eight districts, got %d", len(all))
	}

	recorder = stack.do(t, http.MethodGet, "/api/districts/zipcode/94710", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	var matched []districts.District
	decodeBody(t, recorder, &matched)
	if len(matched) != 1 || matched[0].Name != "District 1" {
		t.Fatalf("unexpected districts for 94710: %+v", matched)
	}
}
