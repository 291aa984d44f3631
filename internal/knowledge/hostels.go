package knowledge

func boysHostels() []Hostel {
	return []Hostel{
		{Name: "Paari Hostel (AC)", Rooms: 50, MembersPerRoom: 2, AC: true, HostelFee: 10000, MessFee: 20000},
		{Name: "Kaari Hostel (AC)", Rooms: 40, MembersPerRoom: 2, AC: true, HostelFee: 10000, MessFee: 20000},
		{Name: "Oori Hostel (Non-AC)", Rooms: 60, MembersPerRoom: 3, AC: false, HostelFee: 8000, MessFee: 20000},
		{Name: "Adhiyaman Hostel (Non-AC)", Rooms: 55, MembersPerRoom: 3, AC: false, HostelFee: 8000, MessFee: 20000},
		{Name: "Marutham Hostel (Non-AC)", Rooms: 45, MembersPerRoom: 4, AC: false, HostelFee: 8000, MessFee: 20000},
	}
}

func girlsHostels() []Hostel {
	return []Hostel{
		{Name: "Yamuna Hostel (AC)", Rooms: 40, MembersPerRoom: 2, AC: true, HostelFee: 10000, MessFee: 20000},
		{Name: "Kalpana Hostel (AC)", Rooms: 35, MembersPerRoom: 2, AC: true, HostelFee: 10000, MessFee: 20000},
		{Name: "Sneha Hostel (Non-AC)", Rooms: 50, MembersPerRoom: 3, AC: false, HostelFee: 8000, MessFee: 20000},
		{Name: "Priya Hostel (Non-AC)", Rooms: 55, MembersPerRoom: 3, AC: false, HostelFee: 8000, MessFee: 20000},
		{Name: "Ruthra Hostel (Non-AC)", Rooms: 45, MembersPerRoom: 4, AC: false, HostelFee: 8000, MessFee: 20000},
	}
}
