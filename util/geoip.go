package util

import (
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// IPLocation is the coarse location of a client address.
type IPLocation struct {
	City    string
	Country string
}

// String renders "City/Country", or whichever part is known.
func (l IPLocation) String() string {
	switch {
	case l.City != "" && l.Country != "":
		return l.City + "/" + l.Country
	case l.Country != "":
		return l.Country
	default:
		return l.City
	}
}

var (
	geoipDB    *geoip2.Reader
	geoipCache *cache.Cache

	geoipLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hospital_directory",
		Name:      "geoip_lookups_total",
		Help:      "Client location lookups for audit events by cache result.",
	}, []string{"result"})
)

// InitGeoIP opens a GeoIP2/GeoLite2 .mmdb file and the lookup cache.
// An empty dbPath disables lookups.
func InitGeoIP(dbPath string) error {
	if dbPath == "" {
		return nil
	}
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoipDB = r
	// Cache entries for 24h, purge every hour
	geoipCache = cache.New(24*time.Hour, 1*time.Hour)
	return nil
}

// CloseGeoIP closes the GeoIP DB if opened.
func CloseGeoIP() {
	if geoipDB != nil {
		_ = geoipDB.Close()
		geoipDB = nil
	}
}

// GetIPLocation resolves ip through the cache and then the local database.
// Private, loopback and unparsable addresses resolve to an empty location.
func GetIPLocation(ip string) IPLocation {
	addr := net.ParseIP(ip)
	if addr == nil || addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() || addr.IsLinkLocalUnicast() {
		return IPLocation{}
	}

	if geoipCache != nil {
		if v, ok := geoipCache.Get(ip); ok {
			geoipLookups.WithLabelValues("hit").Inc()
			if loc, ok := v.(IPLocation); ok {
				return loc
			}
		}
	}
	geoipLookups.WithLabelValues("miss").Inc()

	if geoipDB == nil {
		return IPLocation{}
	}
	rec, err := geoipDB.City(addr)
	if err != nil {
		logger.Debug().Err(err).Str("ip", ip).Msg("geoip lookup failed")
		return IPLocation{}
	}

	loc := IPLocation{City: rec.City.Names["en"], Country: rec.Country.Names["en"]}
	if loc.Country == "" {
		loc.Country = rec.Country.IsoCode
	}
	if geoipCache != nil {
		geoipCache.Set(ip, loc, cache.DefaultExpiration)
	}
	return loc
}

// GeoIPCacheSize returns the number of cached locations.
func GeoIPCacheSize() int {
	if geoipCache == nil {
		return 0
	}
	return geoipCache.ItemCount()
}
