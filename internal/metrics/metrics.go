// Package metrics exposes application metrics collectors.
package metrics

const namespace = "vfxledger"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func label(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
