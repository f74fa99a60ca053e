package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/group"
)

const intakeDoc = `
openapi: 3.0.3
info:
  title: CareBox Intake
  version: "1.0"
paths:
  /order:
    post:
      operationId: submitOrder
      requestBody:
        content:
          application/x-www-form-urlencoded:
            schema:
              type: object
              required: [customer_name, phone, box_type]
              properties:
                customer_name:
                  type: string
                  maxLength: 80
                phone:
                  type: string
                  format: phone
                  pattern: '^\d{9}$'
                  maxLength: 20
                notes:
                  type: string
                  maxLength: 500
                box_type:
                  type: string
                  enum: [box_travel, box_recovery, box_mom, box_pilgrim]
      responses:
        "303":
          description: Redirect after intake
`

func TestDerive(t *testing.T) {
	def, err := Derive(context.Background(), []byte(intakeDoc), "submitOrder")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	if def.Form != "submitOrder" {
		t.Fatalf("form = %q", def.Form)
	}

	wantGroup := group.Group{Name: "box_type", Members: []string{"box_travel", "box_recovery", "box_mom", "box_pilgrim"}}
	if def.Group == nil {
		t.Fatal("expected a selection group")
	}
	if diff := cmp.Diff(wantGroup, *def.Group); diff != "" {
		t.Fatalf("group mismatch (-want +got):\n%s", diff)
	}

	// Properties arrive sorted by name.
	wantOrder := []string{"customer_name", "notes", "phone"}
	var gotOrder []string
	for _, d := range def.Fields {
		gotOrder = append(gotOrder, d.Name)
	}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	byName := make(map[string]field.Descriptor, len(def.Fields))
	for _, d := range def.Fields {
		byName[d.Name] = d
	}

	name := byName["customer_name"]
	if name.Kind != field.KindText || !name.Required || name.MaxLength != 80 {
		t.Fatalf("customer_name = %+v", name)
	}

	phone := byName["phone"]
	if phone.Kind != field.KindPhone || !phone.Required || phone.MaxLength != 20 {
		t.Fatalf("phone = %+v", phone)
	}
	if phone.Pattern == nil || !phone.Pattern.MatchString("079123456") || phone.Pattern.MatchString("123") {
		t.Fatal("phone pattern should be anchored")
	}

	notes := byName["notes"]
	if notes.Required || notes.MaxLength != 500 {
		t.Fatalf("notes = %+v", notes)
	}

	if _, err := def.Session(); err != nil {
		t.Fatalf("session: %v", err)
	}
}

func TestDerive_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := Derive(ctx, nil, "submitOrder"); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := Derive(ctx, []byte(intakeDoc), ""); err == nil {
		t.Fatal("expected error for empty operation id")
	}
	if _, err := Derive(ctx, []byte(intakeDoc), "missingOp"); err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if _, err := Derive(ctx, []byte(":not yaml"), "submitOrder"); err == nil {
		t.Fatal("expected error for malformed document")
	}
}
