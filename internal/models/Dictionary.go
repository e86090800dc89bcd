package models

import "github.com/google/uuid"

// EnumOption is one member of an enum: the key stored on entities and the
// label shown to users.
type EnumOption struct {
	Value string
	Label string
}

type DictionaryEntry struct {
	ID           string `json:"id"`
	Value        string `json:"value"`
	DisplayValue string `json:"displayValue"`
}

// Dictionaries holds the static enum lookups, built once per process.
type Dictionaries struct {
	VehicleType   []DictionaryEntry
	VehicleStatus []DictionaryEntry
	OrderStatus   []DictionaryEntry
}

func NewDictionaries() *Dictionaries {
	return &Dictionaries{
		VehicleType:   toDictionary(VehicleTypes),
		VehicleStatus: toDictionary(VehicleStatuses),
		OrderStatus:   toDictionary(OrderStatuses),
	}
}

func toDictionary(options []EnumOption) []DictionaryEntry {
	entries := make([]DictionaryEntry, 0, len(options))
	for _, opt := range options {
		entries = append(entries, DictionaryEntry{
			ID:           uuid.NewString(),
			Value:        opt.Value,
			DisplayValue: opt.Label,
		})
	}
	return entries
}

// Label returns the label of key within options, or key itself when it is
// not a member.
func Label(options []EnumOption, key string) string {
	for _, opt := range options {
		if opt.Value == key {
			return opt.Label
		}
	}
	return key
}
