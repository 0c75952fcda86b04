package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook filtra as entries de log pelos critérios configurados:
// - Module (ex.: pedido, cupom, auth)
// - Method (GET, POST, PUT, DELETE)
// - Log Type (trace, debug, info, warn, error, fatal)
type FilterHook struct {
	// Sets de filtro (map[string]bool para lookup rápido).
	// Map vazio ou com "*" permite tudo.
	allowedModules  map[string]bool
	allowedMethods  map[string]bool
	allowedLogTypes map[string]bool

	hasModuleFilter  bool
	hasMethodFilter  bool
	hasLogTypeFilter bool

	mu sync.RWMutex
}

// NewFilterHook cria um filter hook com a configuração informada
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{
		allowedModules:  make(map[string]bool),
		allowedMethods:  make(map[string]bool),
		allowedLogTypes: make(map[string]bool),
	}

	hook.updateFilters(cfg)

	return hook
}

// updateFilters recarrega os filtros a partir da configuração
func (h *FilterHook) updateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedModules = parseFilter(cfg.FilterModules)
	h.hasModuleFilter = len(h.allowedModules) > 0 && !h.allowedModules["*"]

	h.allowedMethods = parseFilter(cfg.FilterMethods)
	h.hasMethodFilter = len(h.allowedMethods) > 0 && !h.allowedMethods["*"]

	h.allowedLogTypes = parseFilter(cfg.FilterLogTypes)
	h.hasLogTypeFilter = len(h.allowedLogTypes) > 0 && !h.allowedLogTypes["*"]
}

// parseFilter converte uma string de filtro em map.
// Formato: "valor1,valor2" ou "*" para permitir tudo.
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	values := strings.Split(filterStr, ",")
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			// Lowercase para comparação sem distinção de caixa
			result[strings.ToLower(v)] = true
		}
	}

	return result
}

// Levels retorna os níveis de log tratados pelo hook
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire marca entries filtradas com "_filtered" = true.
// O AsyncHook checa o field e descarta a entry.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.hasLogTypeFilter {
		levelStr := strings.ToLower(entry.Level.String())
		if !h.allowedLogTypes[levelStr] {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	if h.hasModuleFilter {
		module, ok := entry.Data["module"].(string)
		// Entries sem field module passam pelo filtro
		if ok && module != "" {
			if !h.allowedModules[strings.ToLower(module)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	if h.hasMethodFilter {
		method, ok := entry.Data["method"].(string)
		if ok && method != "" {
			if !h.allowedMethods[strings.ToLower(method)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	return nil
}

// UpdateFilters recarrega os filtros em runtime
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.updateFilters(cfg)
}
