package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	activateMessage = "activate"
	dialTimeout     = time.Second
)

// Instance is the lock held by the primary process. Later launches ask the
// primary to come forward instead of starting a second window.
type Instance struct {
	listener    net.Listener
	address     string
	activations chan struct{}
	closeOnce   sync.Once
	done        chan struct{}
}

// AcquireSingleInstance binds a localhost port derived from appName. When the
// port is taken it sends an activation request to the holder and returns
// ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*Instance, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if signalErr := signalPrimary(address); signalErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, signalErr)
		}
		return nil, ErrAlreadyRunning
	}

	instance := &Instance{
		listener:    listener,
		address:     address,
		activations: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	go instance.serve()
	return instance, nil
}

// Activations delivers one value per activation request from a later launch.
func (instance *Instance) Activations() <-chan struct{} {
	return instance.activations
}

// Address returns the bound address.
func (instance *Instance) Address() string {
	if instance == nil {
		return ""
	}
	return instance.address
}

// Release frees the lock.
func (instance *Instance) Release() error {
	if instance == nil || instance.listener == nil {
		return nil
	}
	var err error
	instance.closeOnce.Do(func() {
		close(instance.done)
		err = instance.listener.Close()
	})
	return err
}

func (instance *Instance) serve() {
	for {
		conn, err := instance.listener.Accept()
		if err != nil {
			select {
			case <-instance.done:
				return
			default:
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return
		}
		go instance.handle(conn)
	}
}

func (instance *Instance) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(dialTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil || strings.TrimSpace(line) != activateMessage {
		return
	}
	select {
	case instance.activations <- struct{}{}:
	default:
	}
}

func signalPrimary(address string) error {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return fmt.Errorf("dial primary: %w", err)
	}
	defer conn.Close()
	_ = conn.SetWriteDeadline(time.Now().Add(dialTimeout))
	if _, err := conn.Write([]byte(activateMessage + "\n")); err != nil {
		return fmt.Errorf("signal primary: %w", err)
	}
	return nil
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
