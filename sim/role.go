package sim

import "fmt"

// Role identifies a stage of the four-node serial chain. Order is fixed:
// the Retailer faces the end customer, the Manufacturer faces raw production.
type Role int

const (
	Retailer Role = iota
	Wholesaler
	Distributor
	Manufacturer
)

// NumStages is the number of agents in the chain.
const NumStages = 4

// AllRoles lists the roles in downstream-to-upstream order.
func AllRoles() [NumStages]Role {
	return [NumStages]Role{Retailer, Wholesaler, Distributor, Manufacturer}
}

func (r Role) String() string {
	switch r {
	case Retailer:
		return "Retailer"
	case Wholesaler:
		return "Wholesaler"
	case Distributor:
		return "Distributor"
	case Manufacturer:
		return "Manufacturer"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole maps a stage name (case-sensitive, as produced by String) back to
// its Role. Used by scenario files that key stage settings by name.
func ParseRole(name string) (Role, error) {
	switch name {
	case "Retailer", "retailer":
		return Retailer, nil
	case "Wholesaler", "wholesaler":
		return Wholesaler, nil
	case "Distributor", "distributor":
		return Distributor, nil
	case "Manufacturer", "manufacturer":
		return Manufacturer, nil
	default:
		return 0, fmt.Errorf("unknown stage role %q; valid roles: [retailer, wholesaler, distributor, manufacturer]", name)
	}
}
