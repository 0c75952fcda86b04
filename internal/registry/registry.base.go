// Package registry fornece uma implementação genérica e thread-safe do
// registry pattern, usada para gerenciar instâncias singleton da aplicação
// (coleções do MongoDB, conexões, etc.).
package registry

import (
	"fmt"
	"sync"

	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
)

// Registry é uma implementação genérica e thread-safe de registry.
// O type parameter T permite gerenciar qualquer tipo de objeto.
// A thread-safety é garantida por sync.RWMutex.
//
// Example:
//
//	// Cria um registry de strings
//	strRegistry := NewRegistry[string]()
//
//	// Registra um item
//	strRegistry.Register("chave", "valor")
//
//	// Busca um item
//	if value, exists := strRegistry.Get("chave"); exists {
//	    fmt.Println(value)
//	}
type Registry[T any] struct {
	items map[string]T // Itens indexados por chave
	mu    sync.RWMutex // Mutex que garante a thread-safety
}

// NewRegistry cria e retorna um registry novo.
//
// Returns:
//   - *Registry[T]: instância nova, já inicializada
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register registra um item novo no registry.
// Se já existir um item com o mesmo nome, ele é sobrescrito.
//
// Parameters:
//   - name: identificador único do item
//   - item: item a registrar
//
// Returns:
//   - isNew: true quando o item é novo, false quando sobrescreve outro
//   - err: erro quando name é vazio
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get busca um item pelo nome.
//
// Returns:
//   - item: o item quando encontrado, zero value de T caso contrário
//   - exists: true quando o item existe
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate busca um item pelo nome, criando-o via creator quando ausente.
//
// Parameters:
//   - name: nome do item
//   - creator: função que cria o item novo
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update atualiza um item de forma thread-safe através do updater.
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear remove um item do registry.
// Quando cleanup é fornecido, é chamado antes da remoção para liberar recursos.
//
// Returns:
//   - deleted: true quando o item foi removido, false quando não existia
//   - err: erro ocorrido durante o cleanup
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll remove todos os itens do registry.
// Quando cleanup é fornecido, é chamado para cada item antes da remoção.
//
// Returns:
//   - count: quantidade de itens removidos
//   - err: erro ocorrido durante o cleanup
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("cleanup errors occurred: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
