package api

import (
	"time"

	"github.com/hunterjsb/runebot/internal/rotation"
)

// RotationsResponse is the JSON shape returned by GET /v1/merchant and
// GET /v1/viswax.
type RotationsResponse struct {
	Variant string             `json:"variant"`
	Days    []RotationResponse `json:"days"`
	Meta    MetaResp           `json:"meta"`
}

type RotationResponse struct {
	Date     string         `json:"date"`
	RuneDate int64          `json:"runedate"`
	Slots    []SlotResponse `json:"slots"`
	Fixed    []ItemResponse `json:"fixed,omitempty"`
}

type SlotResponse struct {
	Slot string       `json:"slot"`
	Item ItemResponse `json:"item"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Cost        int    `json:"cost,omitempty"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
}

// SearchResponse is the JSON shape returned by the search endpoints.
// Exhausted is set when fewer than Count days were found in the horizon.
type SearchResponse struct {
	Variant   string             `json:"variant"`
	Item      ItemResponse       `json:"item"`
	From      string             `json:"from"`
	Count     int                `json:"count"`
	Results   []RotationResponse `json:"results"`
	Exhausted bool               `json:"exhausted"`
	Meta      MetaResp           `json:"meta"`
}

// ItemsResponse is the JSON shape returned by GET /v1/items.
type ItemsResponse struct {
	Variant string         `json:"variant"`
	Items   []ItemResponse `json:"items"`
	Meta    MetaResp       `json:"meta"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toItem(it rotation.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Code:        it.Code,
		Name:        it.Name,
		Description: it.Description,
		Cost:        it.Cost,
		MinQuantity: it.Quantity.Min,
		MaxQuantity: it.Quantity.Max,
	}
}

func toItems(items []rotation.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = toItem(it)
	}
	return out
}

func toRotation(r *rotation.Rotation) RotationResponse {
	slots := make([]SlotResponse, len(r.Picks))
	for i, p := range r.Picks {
		slots[i] = SlotResponse{Slot: p.Slot, Item: toItem(p.Item)}
	}
	resp := RotationResponse{
		Date:     r.Date().Format(time.DateOnly),
		RuneDate: r.Day,
		Slots:    slots,
	}
	if len(r.Fixed) > 0 {
		resp.Fixed = toItems(r.Fixed)
	}
	return resp
}

func toRotations(rs []*rotation.Rotation) []RotationResponse {
	out := make([]RotationResponse, len(rs))
	for i, r := range rs {
		out[i] = toRotation(r)
	}
	return out
}
