package task

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
)

var p *ants.PoolWithFunc

func init() {
	var err error
	p, err = ants.NewPoolWithFunc(1024, func(f any) {
		(f.(func()))()
	})

	if err != nil {
		panic(fmt.Sprintf("init goroutine pool: %v", err))
	}
}

// Execute runs f on the shared pool.
func Execute(f func()) {
	_ = p.Invoke(f)
}
