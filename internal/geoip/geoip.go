package geoip

import (
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/oschwald/geoip2-golang"
)

var (
	countryReader *geoip2.Reader
	once          sync.Once
	initErr       error
)

// Init loads the GeoLite2-Country MMDB. Optional: when no path is
// configured, Country simply reports no data.
func Init(countryPath string) error {
	once.Do(func() {
		if countryPath == "" {
			return
		}
		var err error
		countryReader, err = geoip2.Open(countryPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open Country DB at %s: %w", countryPath, err)
		}
	})
	return initErr
}

// Country returns the ISO country code for a literal IP address. Hostnames
// are never resolved; lookups stay local to the MMDB file.
func Country(address string) (string, bool) {
	if countryReader == nil {
		return "", false
	}
	ip := net.ParseIP(address)
	if ip == nil {
		return "", false
	}
	c, err := countryReader.Country(ip)
	if err != nil || c.Country.IsoCode == "" {
		return "", false
	}
	return c.Country.IsoCode, true
}

// Flag renders a two-letter country code as its emoji flag.
func Flag(countryCode string) string {
	if len(countryCode) != 2 {
		return "🌐"
	}
	countryCode = strings.ToUpper(countryCode)
	return string(rune(countryCode[0])+127397) + string(rune(countryCode[1])+127397)
}

func Close() {
	if countryReader != nil {
		countryReader.Close()
	}
}
