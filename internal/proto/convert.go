package proto

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
	"google.golang.org/protobuf/types/known/structpb"
)

// Field names of a bowler document on the wire.
const (
	fieldID        = "id"
	fieldName      = "name"
	fieldEmail     = "email"
	fieldPhone     = "phone"
	fieldOptedIn   = "optedIn"
	fieldCreatedAt = "createdAt"
)

// BowlerToStruct encodes b as a document. An empty ID is left out.
func BowlerToStruct(b models.Bowler) (*structpb.Struct, error) {
	m := map[string]any{
		fieldName:    b.Name,
		fieldEmail:   b.Email,
		fieldPhone:   b.Phone,
		fieldOptedIn: b.OptedIn,
	}
	if b.ID != "" {
		m[fieldID] = b.ID
	}
	if !b.CreatedAt.IsZero() {
		m[fieldCreatedAt] = b.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return structpb.NewStruct(m)
}

// StructToBowler decodes a document. Missing fields stay zero.
func StructToBowler(s *structpb.Struct) (models.Bowler, error) {
	f := s.GetFields()
	b := models.Bowler{
		ID:      f[fieldID].GetStringValue(),
		Name:    f[fieldName].GetStringValue(),
		Email:   f[fieldEmail].GetStringValue(),
		Phone:   f[fieldPhone].GetStringValue(),
		OptedIn: f[fieldOptedIn].GetBoolValue(),
	}
	if ts := f[fieldCreatedAt].GetStringValue(); ts != "" {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return models.Bowler{}, fmt.Errorf("bad %s: %w", fieldCreatedAt, err)
		}
		b.CreatedAt = t
	}
	return b, nil
}

// SnapshotToList encodes a full collection snapshot.
func SnapshotToList(snapshot []models.Bowler) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, 0, len(snapshot))
	for _, b := range snapshot {
		s, err := BowlerToStruct(b)
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(s))
	}
	return &structpb.ListValue{Values: values}, nil
}

// ListToSnapshot decodes a full collection snapshot.
func ListToSnapshot(l *structpb.ListValue) ([]models.Bowler, error) {
	snapshot := make([]models.Bowler, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("snapshot item %d is not a document", i)
		}
		b, err := StructToBowler(s)
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, b)
	}
	return snapshot, nil
}

// IDsToList encodes the IDs of a batch delete.
func IDsToList(ids []string) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(ids))
	for _, id := range ids {
		values = append(values, structpb.NewStringValue(id))
	}
	return &structpb.ListValue{Values: values}
}

// ListToIDs decodes the IDs of a batch delete. Every item must be a
// non-empty string.
func ListToIDs(l *structpb.ListValue) ([]string, error) {
	ids := make([]string, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok || sv.StringValue == "" {
			return nil, fmt.Errorf("batch item %d is not an id", i)
		}
		ids = append(ids, sv.StringValue)
	}
	return ids, nil
}
