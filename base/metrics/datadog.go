package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/listingsync/base/log"
)

const (
	ddClientsSize    = 8 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	// buffer counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	DdPort = 8125

	// round robin index over ddClients
	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initClients falls back to LogClient when no agent host is configured.
func initClients() {
	host := viper.GetString("datadog_host")
	ddClients = make([]statsCli, ddClientsSize)
	if host == "" {
		log.Log().Info("datadog_host not set, metrics go to debug log")
		for i := range ddClients {
			ddClients[i] = &LogClient{}
		}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, DdPort)
	for i := range ddClients {
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		ddClients[i] = cli
	}
	log.Log().WithField("addr", addr).Info("connected to datadog agent")
}

func nextClient() statsCli {
	initOnce.Do(initClients)
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	return ddClients[i]
}

type ddMetrics struct {
	ddTags []string
}

func (dm *ddMetrics) tags(tags []string) []string {
	out := make([]string, 0, len(dm.ddTags)+len(tags)/2)
	out = append(out, dm.ddTags...)
	return append(out, parseTag(tags)...)
}

func (dm *ddMetrics) gauge(key string, val float64, tags ...string) {
	if err := nextClient().Gauge(key, val, dm.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "gauge"}).Error("bump failed")
	}
}

func (dm *ddMetrics) count(key string, val float64, tags ...string) {
	if err := nextClient().Count(key, int64(val), dm.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "count"}).Error("bump failed")
	}
}

func (dm *ddMetrics) histogram(key string, val float64, tags ...string) {
	if err := nextClient().Histogram(key, val, dm.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "histogram"}).Error("bump failed")
	}
}

func (dm *ddMetrics) timer(key string, tags ...string) Ender {
	return &ddTimeTracker{start: time.Now(), key: key, tags: dm.tags(tags)}
}

// parseTag turns k1, v1, k2, v2 into k1:v1, k2:v2
func parseTag(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Warn("odd tag list, last tag dropped")
		tags = tags[:len(tags)-1]
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type ddTimeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (dt *ddTimeTracker) End() {
	dur := float64(time.Since(dt.start)) / float64(time.Millisecond)
	if err := nextClient().TimeInMilliseconds(dt.key, dur, dt.tags, 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": dt.key, "func": "timer"}).Error("bump failed")
	}
}
