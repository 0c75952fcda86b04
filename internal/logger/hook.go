package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook grava as entries de log de forma assíncrona para não bloquear o
// handling das requisições. As entries são enfileiradas em um channel e
// escritas nos writers por uma goroutine dedicada.
type AsyncHook struct {
	writers    []io.Writer // Writers de destino (arquivo, stdout, ...)
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHook cria um async hook com um único writer
func NewAsyncHook(writer io.Writer, bufferSize int) *AsyncHook {
	return NewAsyncHookWithWriters([]io.Writer{writer}, bufferSize)
}

// NewAsyncHookWithWriters cria um async hook com vários writers.
// bufferSize: capacidade da fila de entries (padrão 1000)
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels retorna os níveis de log tratados pelo hook
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire é chamado a cada entry nova. Não bloqueia: apenas enfileira a entry.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook já fechado: escreve direto nos writers como fallback
		var data []byte
		var err error

		if entry.Logger.Formatter != nil {
			data, err = entry.Logger.Formatter.Format(entry)
		} else {
			line, strErr := entry.String()
			if strErr != nil {
				return strErr
			}
			data = []byte(line)
		}

		if err != nil {
			return err
		}

		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	// Envio não bloqueante: com a fila cheia, a entry é descartada para
	// nunca segurar uma requisição
	select {
	case h.entries <- entry:
	default:
	}

	return nil
}

// processEntries consome a fila em uma goroutine dedicada.
// Tem recover para que um panic no logger nunca derrube o servidor.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Não usa o logger aqui para não entrar em loop;
					// escreve direto no stderr
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] panic recuperado na goroutine do logger: %v\n", r)
					debug.PrintStack()
				}
			}()

			// O FilterHook marca entries filtradas com o field "_filtered"
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			// Remove o field "_filtered" antes de formatar (é só marcação)
			filteredEntry := entry
			if _, ok := entry.Data["_filtered"]; ok {
				filteredEntry = entry.Dup()
				delete(filteredEntry.Data, "_filtered")
			}

			var data []byte
			var err error

			if filteredEntry.Logger.Formatter != nil {
				data, err = filteredEntry.Logger.Formatter.Format(filteredEntry)
			} else {
				line, strErr := filteredEntry.String()
				if strErr != nil {
					return
				}
				data = []byte(line)
			}

			if err != nil {
				return
			}

			// Um writer lento pode bloquear aqui, mas nunca o handling das
			// requisições; writers com erro são pulados
			for _, writer := range h.writers {
				_, err = writer.Write(data)
				if err != nil {
					continue
				}
			}
		}()
	}
}

// Close fecha o hook aguardando o processamento das entries pendentes
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
