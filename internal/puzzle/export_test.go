package puzzle

func unregister(day int) {
	mu.Lock()
	defer mu.Unlock()
	delete(registry, day)
}
