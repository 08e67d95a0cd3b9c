package csvcore

import (
	"testing"

	"github.com/ooyeku/csvcore/convert"
	"github.com/ooyeku/csvcore/mapping"
)

type employee struct {
	Name   string `csv:"name"`
	Age    int    `csv:"age"`
	Active bool   `csv:"active"`
}

func TestTryReadRecordEndToEndWithRealAdapters(t *testing.T) {
	r, err := NewReaderFromBytes([]byte("name,age,active\nalice,30,true\nbob,40,false\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("NewReaderFromBytes error: %v", err)
	}
	r.SetMapping(MappingFromRegistry(mapping.NewRegistry(convert.NewRegistry("en-US"))))
	r.SetConversion(ConversionFromRegistry(convert.NewRegistry("en-US")))

	var e employee
	ok, err := r.TryReadRecord(&e)
	if err != nil || !ok {
		t.Fatalf("TryReadRecord() = (%v, %v)", ok, err)
	}
	if e.Name != "alice" || e.Age != 30 || !e.Active {
		t.Fatalf("e = %+v", e)
	}

	ok, err = r.TryReadRecord(&e)
	if err != nil || !ok {
		t.Fatalf("TryReadRecord() second = (%v, %v)", ok, err)
	}
	if e.Name != "bob" || e.Age != 40 || e.Active {
		t.Fatalf("e = %+v", e)
	}
}

func TestTryReadRecordUnresolvedColumnErrors(t *testing.T) {
	r, err := NewReaderFromBytes([]byte("a,b\n1,2\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("NewReaderFromBytes error: %v", err)
	}
	r.SetMapping(MappingFromRegistry(mapping.NewRegistry(convert.NewRegistry("en-US"))))
	r.SetConversion(ConversionFromRegistry(convert.NewRegistry("en-US")))

	var e employee
	_, err = r.TryReadRecord(&e)
	if err == nil {
		t.Fatal("expected error: \"name\" column not present in header")
	}
}
