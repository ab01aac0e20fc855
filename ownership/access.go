package ownership

// Access is the sealed set of access-capability tags. It is used as a type
// constraint; there are no values of this type at run time.
type Access interface {
	access()
}

// Local is satisfied by tags that prove thread confinement (Unique and
// ThreadLocal). APIs that mutate without engine-side synchronization
// constrain their tag parameter to Local.
type Local interface {
	Access
	local()
}

// NonUnique is satisfied by tags under which other references to the same
// object may exist (Shared and ThreadLocal). Borrowing an aliasable
// reference requires no proof, so producers may attach these tags freely.
type NonUnique interface {
	Access
	nonUnique()
}

// Unique marks a reference as the only live reference to its object.
type Unique struct{}

// Shared marks a reference as freely aliasable across threads.
type Shared struct{}

// ThreadLocal marks a reference whose aliases are all confined to the
// current thread.
type ThreadLocal struct{}

func (Unique) access()      {}
func (Shared) access()      {}
func (ThreadLocal) access() {}

func (Unique) local()      {}
func (ThreadLocal) local() {}

func (Shared) nonUnique()      {}
func (ThreadLocal) nonUnique() {}
