/*Package metrics records statsd metrics through datadog-go.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"github.com/spf13/viper"

	"github.com/x-xyz/listingsync/base/env"
)

// Ender stops a timer started by BumpTime
type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	// BumpTime starts a timer, use as defer m.BumpTime("fn.time").End()
	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client whose keys are prefixed with pkgName
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: ddMetrics{
			ddTags: []string{
				"host:", // drop the agent host tag
				"pod:" + env.PodName(),
				"env:" + orEnv(viper.GetString("env_name"), env.EnvName()),
				"app:" + orEnv(viper.GetString("app_name"), env.AppName()),
			},
		},
	}
}

func orEnv(configured, fromEnv string) string {
	if configured != "" {
		return configured
	}
	return fromEnv
}

type Metrics struct {
	pkgName string
	datadog ddMetrics
}

func (mt *Metrics) key(k string) string {
	return mt.pkgName + "." + k
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.datadog.gauge(mt.key(key), val, tags...)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.datadog.count(mt.key(key), val, tags...)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.datadog.histogram(mt.key(key), val, tags...)
}

func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return mt.datadog.timer(mt.key(key), tags...)
}
