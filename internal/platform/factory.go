package platform

import (
	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/store"
)

// Init builds and initializes the state store for the given vault path.
func Init(path string, opts ...Option) (core.StateStore, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store, nil
	}

	forceTemp := o.forceTemp
	if o.devSafety && IsDevRun() {
		forceTemp = true
	}
	path = ResolveVaultPath(path, forceTemp)

	st := store.New(store.Config{
		Path:      path,
		MustExist: o.mustExist,
		Logger:    o.logger,
		Seed:      o.seed,
		Debounce:  o.debounce,
	})
	if err := st.Initialize(); err != nil {
		return nil, err
	}
	return st, nil
}

// Open initializes the store and loads a session over it.
func Open(path string, opts ...Option) (*core.Session, error) {
	st, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	sessionOpts := []core.SessionOption{}
	if o.logger != nil {
		sessionOpts = append(sessionOpts, core.WithSessionLogger(o.logger))
	}
	if o.clock != nil {
		sessionOpts = append(sessionOpts, core.WithClock(o.clock))
	}
	return core.NewSession(st, sessionOpts...)
}
