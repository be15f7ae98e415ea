package cities

import (
	"errors"
	"testing"
)

func TestLookup_UnknownCity(t *testing.T) {
	_, err := Lookup("miami")
	if err == nil {
		t.Fatal("expected error for unregistered city")
	}
	if !errors.Is(err, ErrUnknownCity) {
		t.Errorf("expected ErrUnknownCity, got %v", err)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	c, err := Lookup("Chicago")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if c.ID != "chicago" {
		t.Errorf("expected chicago, got %s", c.ID)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		city     string
		year     int
		month    int
		expected string
	}{
		{"chicago", 2024, 3, "202403-divvy-tripdata"},
		{"new_york", 2024, 11, "202411-citibike-tripdata"},
		{"columbus", 2023, 1, "202301-cogo-tripdata"},
		{"washington_dc", 2022, 7, "202207-capitalbikeshare-tripdata"},
		{"portland", 2020, 5, "202005.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			c, err := Lookup(tt.city)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			got, err := c.FileName(tt.year, tt.month)
			if err != nil {
				t.Fatalf("FileName failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
			again, _ := c.FileName(tt.year, tt.month)
			if again != got {
				t.Errorf("FileName is not deterministic: %s vs %s", got, again)
			}
		})
	}
}

func TestFileName_MonthOutOfRange(t *testing.T) {
	c, _ := Lookup("chicago")
	for _, m := range []int{0, 13, -1} {
		if _, err := c.FileName(2024, m); err == nil {
			t.Errorf("expected error for month %d", m)
		}
	}
}

func TestArchiveURL(t *testing.T) {
	c, _ := Lookup("chicago")
	url, err := c.ArchiveURL(2024, 3)
	if err != nil {
		t.Fatalf("ArchiveURL failed: %v", err)
	}
	expected := "https://divvy-tripdata.s3.amazonaws.com/202403-divvy-tripdata.zip"
	if url != expected {
		t.Errorf("expected %s, got %s", expected, url)
	}
}

func TestArchiveURL_Portland(t *testing.T) {
	c, _ := Lookup("portland")

	url, err := c.ArchiveURL(2020, 5)
	if err != nil {
		t.Fatalf("ArchiveURL failed for 2020: %v", err)
	}
	expected := "https://s3.amazonaws.com/biketown-tripdata-public/202005.csv.zip"
	if url != expected {
		t.Errorf("expected %s, got %s", expected, url)
	}

	for _, month := range []int{1, 6, 12} {
		if _, err := c.ArchiveURL(2021, month); err == nil {
			t.Errorf("expected error for portland 2021 month %d", month)
		}
	}
}

func TestFileName_BayAreaHasNoTemplate(t *testing.T) {
	c, _ := Lookup("bay_area")
	if _, err := c.FileName(2024, 1); err == nil {
		t.Error("expected error: bay_area has no file template")
	}
}

func TestArchiveURL_BayAreaUnsupported(t *testing.T) {
	c, _ := Lookup("bay_area")
	if _, err := c.ArchiveURL(2024, 1); err == nil {
		t.Error("expected error: bay_area publishes no downloads")
	}
}

func TestPortalURL(t *testing.T) {
	tests := []struct {
		city     string
		expected string
	}{
		{"bay_area", "https://lyft.com/bikes/bay-wheels"},
		{"chicago", "https://divvybikes.com/system-data"},
		{"new_york", "https://citibikenyc.com/system-data"},
	}
	for _, tt := range tests {
		c, err := Lookup(tt.city)
		if err != nil {
			t.Fatalf("Lookup(%s) failed: %v", tt.city, err)
		}
		if got := c.PortalURL(); got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.city, tt.expected, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		city     string
		expected string
	}{
		{"bay_area", "Bay Area"},
		{"washington_dc", "Washington DC"},
		{"chicago", "Chicago"},
	}
	for _, tt := range tests {
		c, _ := Lookup(tt.city)
		if c.DisplayName != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.city, tt.expected, c.DisplayName)
		}
	}
}
