package landmarks

import (
	"log"
	"sync"
)

var (
	mutex    sync.RWMutex
	instance Detector
)

// Init loads the default detector. A load failure is terminal for the
// session: the overlay simply never appears while raw video keeps working,
// so this logs and reports instead of panicking.
func Init(modelsDir string) error {
	det, err := NewGoFaceDetector(modelsDir)
	if err != nil {
		log.Printf("Face landmark model load failed: %v", err)
		return err
	}
	mutex.Lock()
	instance = det
	mutex.Unlock()
	return nil
}

// Get returns the shared detector, or nil while Init hasn't succeeded.
func Get() Detector {
	mutex.RLock()
	defer mutex.RUnlock()
	return instance
}

func Ready() bool {
	return Get() != nil
}

func Shutdown() {
	mutex.Lock()
	defer mutex.Unlock()
	if instance != nil {
		instance.Close()
		instance = nil
	}
}
